package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{86399 * time.Second, "86399"},
		{10 * time.Second, "10"},
		{9*time.Second + 999*time.Millisecond, "10"},
		{9*time.Second + 200*time.Millisecond, "9"},
		{300 * time.Millisecond, "0"},
		{time.Second, "1"},
		{40 * 365 * 24 * time.Hour, "1261440000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRemaining(tt.in))
		})
	}
}

func TestSpecialTexts(t *testing.T) {
	assert.Equal(t, "", EmptyText)
	assert.Equal(t, "---", FinishedText)
}
