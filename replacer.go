package synalter

import (
	"fmt"

	"github.com/projectdiscovery/fasttemplate"
)

const (
	// ParenthesisOpen marker - begin of a placeholder
	ParenthesisOpen = "{{"
	// ParenthesisClose marker - end of a placeholder
	ParenthesisClose = "}}"
)

// Replace replaces placeholders in template with values on the fly.
func Replace(template string, values map[string]interface{}) string {
	valuesMap := make(map[string]interface{}, len(values))
	for k, v := range values {
		valuesMap[k] = fmt.Sprint(v)
	}
	return fasttemplate.ExecuteStringStd(template, ParenthesisOpen, ParenthesisClose, valuesMap)
}

// ValidateTemplate compiles template and checks all of its placeholders
// are present in vars
func ValidateTemplate(template string, vars ...string) error {
	if _, err := fasttemplate.NewTemplate(template, ParenthesisOpen, ParenthesisClose); err != nil {
		return err
	}
	return checkMissing(template, vars)
}
