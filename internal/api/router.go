package api

import (
	"net/http"

	"tagvault/internal/handler"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter() (http.Handler, error) {
	walletHandler, err := handler.NewWalletHandler()
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("/wallet/create", walletHandler.Create)
	mux.HandleFunc("/wallet/import", walletHandler.Import)
	mux.HandleFunc("/wallet/read", walletHandler.Read)
	mux.HandleFunc("/wallet/probe", walletHandler.Probe)
	mux.HandleFunc("/wallet/sign", walletHandler.Sign)
	mux.HandleFunc("/wallet/balance", walletHandler.Balance)

	return mux, nil
}
