package synalter

import (
	"fmt"
	"regexp"
	"strings"

	sliceutil "github.com/projectdiscovery/utils/slice"
)

var varRegex = regexp.MustCompile(`\{\{([a-zA-Z0-9]+)\}\}`)

// returns names of all variables
func getAllVars(data string) []string {
	values := []string{}
	for _, v := range varRegex.FindAllStringSubmatch(data, -1) {
		if len(v) >= 2 {
			values = append(values, v[1])
		}
	}
	return values
}

// checkMissing checks if all variables/placeholders of template are known
// if not error is thrown with description
func checkMissing(template string, known []string) error {
	missing := []string{}
	for _, v := range getAllVars(template) {
		if !sliceutil.Contains(known, v) {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("unknown `%v` variables in template", strings.Join(sliceutil.Dedupe(missing), ","))
	}
	return nil
}
