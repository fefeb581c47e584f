package audit

import (
	"testing"

	"github.com/de-tools/retention-audit/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestBenchmarkTable_Lookup(t *testing.T) {
	table := DefaultBenchmarks()

	t.Run("known industry is case insensitive", func(t *testing.T) {
		assert.Equal(t, table["beauty"], table.Lookup("  Beauty "))
	})

	t.Run("unknown industry uses default row", func(t *testing.T) {
		assert.Equal(t, table["default"], table.Lookup("aerospace"))
	})

	t.Run("every row covers every category", func(t *testing.T) {
		for _, industry := range table.Industries() {
			for _, c := range domain.Categories {
				r, ok := table[industry][c]
				assert.True(t, ok, "%s/%s", industry, c)
				assert.LessOrEqual(t, r.Average, r.TopQuartile, "%s/%s", industry, c)
			}
		}
	})
}

func TestCalculateGaps(t *testing.T) {
	benchmark := row(50, 70, 50, 70, 50, 70, 50, 70, 50, 70, 50, 70)
	scores := map[domain.Category]float64{
		domain.CategoryAcquisition: 40,
		domain.CategoryActivation:  50,
		domain.CategoryNurture:     65,
		domain.CategoryRetention:   50,
		domain.CategoryWinback:     0,
		domain.CategoryAdvocacy:    100,
	}

	gaps := CalculateGaps(scores, benchmark)

	assert.Equal(t, 10.0, gaps[domain.CategoryAcquisition])
	assert.Equal(t, 0.0, gaps[domain.CategoryActivation])
	assert.Equal(t, -15.0, gaps[domain.CategoryNurture])
	assert.Equal(t, 50.0, gaps[domain.CategoryWinback])
	assert.Equal(t, -50.0, gaps[domain.CategoryAdvocacy])
}
