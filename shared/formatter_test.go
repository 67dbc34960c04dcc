package shared

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestEllipticalTruncate(t *testing.T) {
	assert.Equal(t, "…", TruncateWithEllipsis("1 2 3", 0))
	assert.Equal(t, "1…", TruncateWithEllipsis("1 2 3", 1))
	assert.Equal(t, "1…", TruncateWithEllipsis("1 2 3", 2))
	assert.Equal(t, "1 2…", TruncateWithEllipsis("1 2 3", 3))
	assert.Equal(t, "1 2 3", TruncateWithEllipsis("1 2 3", 5))
}

func TestUnescapeSlackText(t *testing.T) {
	assert.Equal(t, "fish & chips", UnescapeSlackText("fish &amp; chips"))
	assert.Equal(t, "back after <lunch>", UnescapeSlackText(" back after &lt;lunch&gt; "))
	// Unescaped input passes through untouched
	assert.Equal(t, "back after <lunch>", UnescapeSlackText("back after <lunch>"))
	assert.Equal(t, "x<sad", UnescapeSlackText("x<sad"))
	assert.Equal(t, "", UnescapeSlackText(""))
}

func TestStripHtml(t *testing.T) {
	assert.Equal(t, "fish & chips", StripHtml("fish &amp; chips"))
	assert.Equal(t, "a < b", StripHtml("a &lt; b"))
	assert.Equal(t, "feeling sad", StripHtml("  <b>feeling</b> sad "))
	assert.Equal(t, "", StripHtml(""))
}
