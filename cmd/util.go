package cmd

import (
	"fmt"
	"strings"

	"intermarket/api"
	"intermarket/internal/repository"
	"intermarket/internal/service"
	"intermarket/internal/util"
)

func InitializeDependencies() (*api.ApiHandler, error) {
	config, err := util.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var priceSeriesRepository repository.PriceSeriesRepository
	switch strings.ToLower(config.PriceProvider) {
	case "", "yahoo":
		priceSeriesRepository = repository.NewYahooRepository()
	case "alpaca":
		priceSeriesRepository = repository.NewAlpacaRepository(
			config.AlpacaApiKey,
			config.AlpacaApiSecret,
			config.AlpacaEndpoint,
		)
	default:
		return nil, fmt.Errorf("unknown price provider %q", config.PriceProvider)
	}

	universeRepository := repository.NewUniverseRepository(config.UniverseFile)

	// Commentary is optional. Without a key every other endpoint still works.
	var gptRepository repository.GptRepository
	if config.ChatGPTApiKey != "" {
		gptRepository, err = repository.NewGptRepository(config.ChatGPTApiKey)
		if err != nil {
			return nil, err
		}
	}

	intermarketService := service.NewIntermarketService(
		priceSeriesRepository,
		universeRepository,
		gptRepository,
		config.CorrelationWindowDays,
		config.CorrelationThreshold,
	)

	return &api.ApiHandler{
		IntermarketService: intermarketService,
	}, nil
}
