package xlsxexport

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
)

func TestWriter_Register(t *testing.T) {
	due := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	w, err := NewWriter("Drawing Register")
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteViews([]domain.DrawingView{
		{
			Drawing: domain.Drawing{
				Name:            "Ground Floor Plan",
				Category:        "Architectural",
				CurrentRevision: 2,
				RevisionHistory: []domain.RevisionEntry{{Revision: 1}},
				DueDate:         &due,
			},
			Display: domain.StatusDisplay{Label: "Pending Approval"},
			Overdue: true,
		},
	}))

	var buf bytes.Buffer
	_, err = w.WriteTo(&buf)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Drawing Register")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Drawing", rows[0][0])
	assert.Equal(t, "Ground Floor Plan", rows[1][0])
	assert.Equal(t, "Architectural", rows[1][1])
	assert.Equal(t, "Pending Approval", rows[1][2])
	assert.Equal(t, "2", rows[1][3])
	assert.Equal(t, "2026-02-01", rows[1][5])
	assert.Equal(t, "Yes", rows[1][8])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hillside Villa", "Hillside_Villa"},
		{"Tower @ Block-7!!", "Tower_Block-7"},
		{"___trimmed___", "trimmed"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in))
	}
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "Hillside_Villa_register_2026-03-15.xlsx", BuildFilename("Hillside Villa", now))
}
