package pricing

import (
	"context"
	"testing"
	"tutorat-service/internal/app/models"
	"tutorat-service/internal/pkg/constvars"
	"tutorat-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		gradeBand string
		location  string
		duration  models.DurationLabel
		want      int
	}{
		{"primaire", "teacher", models.DurationShort, 35},
		{"primaire", "online", models.DurationMedium, 50},
		{"primaire", "home", models.DurationLong, 80},
		{"secondaire", "teacher", models.DurationLong, 70},
		{"secondaire", "home", models.DurationShort, 45},
		{"secondaire", "home", models.DurationMedium, 65},
	}

	for _, tt := range tests {
		t.Run(tt.gradeBand+"/"+tt.location+"/"+tt.duration.String(), func(t *testing.T) {
			got, err := Calculate(tt.gradeBand, tt.location, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculate_UnknownInputs(t *testing.T) {
	_, err := Calculate("cegep", "home", models.DurationShort)
	assert.Error(t, err)

	_, err = Calculate("primaire", "library", models.DurationShort)
	assert.Error(t, err)

	_, err = Calculate("primaire", "home", models.DurationLabel("3h"))
	assert.Error(t, err)
}

func TestPackages(t *testing.T) {
	packages, err := Packages("secondaire", "home")
	require.NoError(t, err)
	require.Len(t, packages, 6)

	first := packages[0]
	assert.Equal(t, models.DurationShort, first.Duration)
	assert.Equal(t, 1, first.SessionsPerWeek)
	assert.Equal(t, 165, first.Price)
	assert.Equal(t, 180, first.OriginalPrice)
	assert.Equal(t, 15, first.Savings)

	last := packages[5]
	assert.Equal(t, models.DurationLong, last.Duration)
	assert.Equal(t, 2, last.SessionsPerWeek)
	assert.Equal(t, 610, last.Price)
	assert.Equal(t, 720, last.OriginalPrice)
}

func TestGradeBand(t *testing.T) {
	assert.Equal(t, constvars.GradeBandPrimaire, GradeBand("primaire-4"))
	assert.Equal(t, constvars.GradeBandSecondaire, GradeBand("secondaire-1"))
}

func TestPricingUsecase_GetPricing(t *testing.T) {
	uc := &pricingUsecase{Log: zap.NewNop()}

	response, err := uc.GetPricing(context.Background(), "primaire", "online")
	require.NoError(t, err)
	require.Len(t, response.Sessions, 3)
	assert.Equal(t, "1h30", response.Sessions[1].Duration)
	assert.Equal(t, 50, response.Sessions[1].Price)
	assert.Len(t, response.Packages, 6)

	_, err = uc.GetPricing(context.Background(), "primaire", "moon")
	assert.True(t, exceptions.HasStatusCode(err, constvars.StatusBadRequest))
}
