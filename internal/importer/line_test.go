package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain fields",
			line: "1/15/2024,STARBUCKS,5.75,",
			want: []string{"1/15/2024", "STARBUCKS", "5.75", "", ""},
		},
		{
			name: "quoted comma stays in field",
			line: `1/15/2024,"COSTCO, WHOLESALE",120.00,0`,
			want: []string{"1/15/2024", "COSTCO, WHOLESALE", "120.00", "0"},
		},
		{
			name: "fields are trimmed",
			line: " a , b ,c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "unterminated quote swallows the rest",
			line: `a,"b,c`,
			want: []string{"a", "b,c"},
		},
		{
			name: "empty line is one empty field",
			line: "",
			want: []string{""},
		},
		{
			name: "trailing comma adds an empty field",
			line: "a,b,",
			want: []string{"a", "b", "", ""},
		},
		{
			name: "quotes are stripped",
			line: `"hello","world"`,
			want: []string{"hello", "world"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLine(tt.line))
		})
	}
}
