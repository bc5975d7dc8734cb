package pricing

import (
	"context"
	"sync"
	"tutorat-service/internal/app/contracts"
	"tutorat-service/internal/pkg/constvars"
	"tutorat-service/internal/pkg/dto/responses"
	"tutorat-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type pricingUsecase struct {
	Log *zap.Logger
}

var (
	pricingUsecaseInstance contracts.PricingUsecase
	oncePricingUsecase     sync.Once
)

func NewPricingUsecase(logger *zap.Logger) contracts.PricingUsecase {
	oncePricingUsecase.Do(func() {
		pricingUsecaseInstance = &pricingUsecase{
			Log: logger,
		}
	})
	return pricingUsecaseInstance
}

func (uc *pricingUsecase) GetPricing(ctx context.Context, gradeBand, location string) (*responses.Pricing, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("pricingUsecase.GetPricing called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	packages, err := Packages(gradeBand, location)
	if err != nil {
		uc.Log.Error("pricingUsecase.GetPricing invalid query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidPricingQuery(err)
	}

	response := &responses.Pricing{
		Grade:    gradeBand,
		Location: location,
		Packages: make([]responses.PackagePrice, len(packages)),
	}
	for _, offer := range packages {
		price, _ := Calculate(gradeBand, location, offer.Duration)
		if offer.SessionsPerWeek == 1 {
			response.Sessions = append(response.Sessions, responses.SessionPrice{
				Duration: offer.Duration.String(),
				Price:    price,
			})
		}
	}
	for i, offer := range packages {
		response.Packages[i] = responses.PackagePrice{
			Duration:        offer.Duration.String(),
			SessionsPerWeek: offer.SessionsPerWeek,
			Price:           offer.Price,
			OriginalPrice:   offer.OriginalPrice,
			Savings:         offer.Savings,
		}
	}

	uc.Log.Info("pricingUsecase.GetPricing succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return response, nil
}
