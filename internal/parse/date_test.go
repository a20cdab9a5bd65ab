package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain date",
			text: "CB 12/03/2024 MERCI",
			want: "12/03/2024",
		},
		{
			name: "two digit year lands in the 2000s",
			text: "TICKET DU 05/04/24",
			want: "05/04/2024",
		},
		{
			name: "single digit day and month are padded",
			text: "LE 5/4/2024",
			want: "05/04/2024",
		},
		{
			name: "dash separators",
			text: "EMIS 28-10-2023",
			want: "28/10/2023",
		},
		{
			name: "dot separators",
			text: "EMIS 28.10.2023",
			want: "28/10/2023",
		},
		{
			name: "LE context beats an earlier date",
			text: "12/03/24 REF 9 LE 05/04/2024 A 12:30",
			want: "05/04/2024",
		},
		{
			name: "time context beats an earlier date",
			text: "12/03/24 PUIS 05/04/2024 A 12H30",
			want: "05/04/2024",
		},
		{
			name: "ties break leftmost",
			text: "01/02/2024 PUIS 03/04/2024",
			want: "01/02/2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDate(tt.text)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestExtractDate_NoMatch(t *testing.T) {
	for _, text := range []string{
		"BOULANGERIE MERCI",
		"MONTANT 12,50",
		"", // empty input
	} {
		assert.Nil(t, ExtractDate(text), "text %q", text)
	}
}
