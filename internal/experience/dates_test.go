package experience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLayoutParser(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"Jan 2020", date(2020, time.January), true},
		{"Sept. 2021", date(2021, time.September), true},
		{"december2019", date(2019, time.December), true},
		{"2019", date(2019, time.January), true},
		{"2021-03-15", time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"someday", time.Time{}, false},
	}

	var parser LayoutParser
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parser.ParseDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %s", got)
			}
		})
	}
}
