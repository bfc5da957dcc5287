//go:build darwin

package locale

/*
#cgo LDFLAGS: -framework CoreFoundation
#include <stdlib.h>
#include <CoreFoundation/CoreFoundation.h>

static char *copyCurrentLocaleIdentifier(void) {
	CFLocaleRef locale = CFLocaleCopyCurrent();
	if (locale == NULL) {
		return NULL;
	}
	CFStringRef identifier = CFLocaleGetIdentifier(locale);
	if (identifier == NULL) {
		CFRelease(locale);
		return NULL;
	}
	CFIndex size = CFStringGetMaximumSizeForEncoding(CFStringGetLength(identifier), kCFStringEncodingUTF8) + 1;
	char *buf = malloc(size);
	if (buf != NULL && !CFStringGetCString(identifier, buf, size, kCFStringEncodingUTF8)) {
		free(buf);
		buf = NULL;
	}
	CFRelease(locale);
	return buf;
}
*/
import "C"

import (
	"unsafe"

	"github.com/gonls/nls/env"
)

// detectLocale reads the current CFLocale identifier and normalizes it
// (underscore separators to hyphens, at most two segments kept).
func detectLocale(_ env.Resolver) string {
	cs := C.copyCurrentLocaleIdentifier()
	if cs == nil {
		return ""
	}
	defer C.free(unsafe.Pointer(cs))
	return normalizeAppleIdentifier(C.GoString(cs))
}
