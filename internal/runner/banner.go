package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
                      __  __
   _______ ______ ___/ /_/ /____  ____
  (_-< // / _ \/ _ \/ / __/ -_) __/
 /___|_, /_//_/\_,_/_/\__/\__/_/
    /___/
`

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}

// GetUpdateCallback returns a callback function that updates synalter
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("synalter", version)()
	}
}
