package service

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// User content is stored cleaned, display-time code never sanitizes.
var contentPolicy = bluemonday.StrictPolicy()

func sanitizeContent(s string) string {
	return strings.TrimSpace(contentPolicy.Sanitize(s))
}
