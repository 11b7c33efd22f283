package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/friendex/internal/domain"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRelativeDays(t *testing.T) {
	today := domain.NewDate(2026, time.February, 7)

	tests := []struct {
		name string
		days int
		want string
	}{
		{"today", 0, "Today"},
		{"tomorrow", 1, "Tomorrow"},
		{"yesterday", -1, "Yesterday"},
		{"3 days future", 3, "In 3d"},
		{"3 days past", -3, "3d ago"},
		{"10 days future", 10, "In 10d"},
		{"3 weeks future", 21, "In 3w"},
		{"3 months future", 90, "In 3mo"},
		{"2 weeks past", -14, "2w ago"},
		{"3 months past", -90, "3mo ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDays(today.AddDays(tt.days), today))
		})
	}
}

func TestRelativeDays_AcrossDST(t *testing.T) {
	// Civil dates have no zone, so a DST switch never shifts the count.
	today := domain.NewDate(2026, time.March, 7)
	assert.Equal(t, "In 2d", RelativeDays(domain.NewDate(2026, time.March, 9), today))
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "Mon, Mar 15 2021", HumanDate(domain.NewDate(2021, time.March, 15)))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "c0ffee00", stripANSI(TruncID("c0ffee00-0000-4000-8000-000000000001")))
	assert.Equal(t, "abc", stripANSI(TruncID("abc")))
}

func TestRenderBox_Title(t *testing.T) {
	out := stripANSI(RenderBox("ada", "hello"))
	assert.Contains(t, out, "ADA")
	assert.Contains(t, out, "hello")
	assert.True(t, strings.HasPrefix(out, "╭"))
}
