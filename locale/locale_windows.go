//go:build windows

package locale

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/gonls/nls/env"
)

// localeNameMaxLength is LOCALE_NAME_MAX_LENGTH from the Windows SDK.
const localeNameMaxLength = 85

// detectLocale calls GetUserDefaultLocaleName, which reports locale names
// in language-REGION form already; the result is returned unmodified.
func detectLocale(_ env.Resolver) string {
	kernel32 := windows.NewLazySystemDLL("kernel32.dll")
	proc := kernel32.NewProc("GetUserDefaultLocaleName")
	if proc.Find() != nil {
		return ""
	}

	buf := make([]uint16, localeNameMaxLength)
	ret, _, _ := proc.Call(
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if ret == 0 {
		return ""
	}
	return windows.UTF16ToString(buf)
}
