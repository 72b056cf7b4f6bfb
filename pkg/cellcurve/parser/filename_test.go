package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFileName(t *testing.T) {
	tests := []struct {
		name string
		want FileMeta
	}{
		{
			name: "G_COM1__Highstar (Black)100Ah__311218541155988_20260225104342#0#1_1_5.xlsx",
			want: FileMeta{Serial: "311218541155988", Channel: "COM1", Date: "2026-02-25 10:43:42"},
		},
		{
			name: "G_COM12__SN4500_20240101120000#0#1_1_5",
			want: FileMeta{Serial: "SN4500", Channel: "COM12", Date: "2024-01-01 12:00:00"},
		},
		{
			name: "G_COM1__SN4500_20241399120000#0",
			want: FileMeta{Serial: "SN4500", Channel: "COM1"},
		},
		{
			name: "report.xlsx",
			want: FileMeta{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFileName(tt.name))
		})
	}
}
