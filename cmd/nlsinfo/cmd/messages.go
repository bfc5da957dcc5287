package cmd

import (
	"embed"
	"log"

	"golang.org/x/text/language"

	"github.com/gonls/nls"
	"github.com/gonls/nls/locale"
)

//go:embed locales/*.json
var localesFS embed.FS

// Text ids for nlsinfo's own output.
const (
	msgDetectedLocale nls.TextID = 1
	msgCatalogLoaded  nls.TextID = 2
)

var messages *nls.Catalog

func init() {
	var err error
	messages, err = nls.LoadFS(localesFS, "locales", language.MustParse(locale.Default))
	if err != nil {
		log.Fatalf("nlsinfo: failed to load embedded locales: %v", err)
	}
}
