package mocks

//go:generate mockgen -destination=./mock_trading_api.go -package=mocks github.com/rxtech-lab/argo-terminal/internal/api TradingAPI
//go:generate mockgen -destination=./mock_auth_api.go -package=mocks github.com/rxtech-lab/argo-terminal/internal/api AuthAPI
