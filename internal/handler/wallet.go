package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"tagvault/internal/client"
	"tagvault/internal/common"
	"tagvault/internal/config"
	"tagvault/internal/crypto"
	"tagvault/internal/envelope"
	"tagvault/internal/model"
	"tagvault/internal/tag"
	"tagvault/wallet"

	"github.com/rs/zerolog/log"
)

// WalletHandler exposes the tag wallet flows over HTTP
type WalletHandler struct {
	service   *wallet.Service
	solClient *client.SolanaClient
	ethClient *client.EthereumClient
}

// NewWalletHandler creates a new WalletHandler with config values
func NewWalletHandler() (*WalletHandler, error) {
	filePath := config.GetTagFilePath()
	if filePath == "" {
		return nil, errors.New("TAG_FILE_PATH not set")
	}

	return &WalletHandler{
		service:   wallet.New(tag.NewStore(filePath)),
		solClient: client.NewSolanaClient(config.GetSolanaRPCURL()),
		ethClient: client.NewEthereumClient(config.GetEthereumRPCURL()),
	}, nil
}

// Create handles POST /wallet/create
// @Summary      Create new wallet on the tag
// @Description  Generates a wallet key or master seed, encrypts it under the PIN and writes it to the tag
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateRequest  true  "PIN and wallet kind"
// @Success      200      {object}  model.CreateResponse
// @Router       /wallet/create [post]
func (h *WalletHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, model.NewInputError("invalid request body"))
		return
	}

	var result *wallet.CreateResult
	var err error
	switch req.Kind {
	case "key":
		result, err = h.service.CreateKeyWallet(r.Context(), req.PIN)
	case "seed":
		result, err = h.service.CreateSeedWallet(r.Context(), req.PIN)
	default:
		err = model.NewInputError("kind must be \"key\" or \"seed\"")
	}
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.CreateResponse{
		Success:         true,
		Kind:            result.Kind,
		SolanaAddress:   result.SolanaAddress,
		EthereumAddress: result.EthereumAddress,
		Mnemonic:        result.Mnemonic,
		QR:              result.QR,
	})
}

// Import handles POST /wallet/import
// @Summary      Restore a seed wallet from its mnemonic backup
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportRequest  true  "PIN and mnemonic"
// @Success      200      {object}  model.CreateResponse
// @Router       /wallet/import [post]
func (h *WalletHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, model.NewInputError("invalid request body"))
		return
	}

	result, err := h.service.ImportSeedWallet(r.Context(), req.PIN, req.Mnemonic)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.CreateResponse{
		Success:         true,
		Kind:            result.Kind,
		SolanaAddress:   result.SolanaAddress,
		EthereumAddress: result.EthereumAddress,
		Mnemonic:        result.Mnemonic,
		QR:              result.QR,
	})
}

// Read handles POST /wallet/read
// @Summary      Unlock the tag and return wallet addresses
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ReadRequest  true  "PIN"
// @Success      200      {object}  model.ReadResponse
// @Router       /wallet/read [post]
func (h *WalletHandler) Read(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, model.NewInputError("invalid request body"))
		return
	}

	result, err := h.service.ReadWallet(r.Context(), req.PIN)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ReadResponse{
		Kind:            result.Kind,
		SolanaAddress:   result.SolanaAddress,
		EthereumAddress: result.EthereumAddress,
		QR:              result.QR,
	})
}

// Probe handles GET /wallet/probe
// @Summary      Check whether the tag carries recognized wallet data
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.ProbeResponse
// @Router       /wallet/probe [get]
func (h *WalletHandler) Probe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	recognized, err := h.service.Probe(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ProbeResponse{Recognized: recognized})
}

// Sign handles POST /wallet/sign
// @Summary      Sign a message with a wallet key from the tag
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.SignRequest  true  "PIN, chain and message"
// @Success      200      {object}  model.SignResponse
// @Router       /wallet/sign [post]
func (h *WalletHandler) Sign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.SignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, model.NewInputError("invalid request body"))
		return
	}

	signature, err := h.service.SignMessage(r.Context(), req.PIN, req.Chain, []byte(req.Message))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.SignResponse{
		Chain:     req.Chain,
		Signature: signature,
	})
}

// Balance handles POST /wallet/balance
// @Summary      Unlock the tag and fetch on-chain balances
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ReadRequest  true  "PIN"
// @Success      200      {object}  model.BalanceResponse
// @Router       /wallet/balance [post]
func (h *WalletHandler) Balance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, model.NewInputError("invalid request body"))
		return
	}

	result, err := h.service.ReadWallet(r.Context(), req.PIN)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := model.BalanceResponse{
		Kind:            result.Kind,
		SolanaAddress:   result.SolanaAddress,
		EthereumAddress: result.EthereumAddress,
	}

	if result.SolanaAddress != "" {
		lamports, err := h.solClient.GetBalanceLamports(r.Context(), result.SolanaAddress)
		if err != nil {
			writeError(w, err)
			return
		}
		resp.SOL = common.LamportsToSOL(lamports)
	}

	if result.EthereumAddress != "" {
		wei, err := h.ethClient.GetBalanceWei(r.Context(), result.EthereumAddress)
		if err != nil {
			writeError(w, err)
			return
		}
		resp.ETH = common.WeiToETH(wei)
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// writeError maps the error taxonomy onto HTTP statuses. Error messages
// never carry key material, so they are safe to pass through as-is.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"

	switch {
	case errors.Is(err, envelope.ErrNotRecognized):
		status, code = http.StatusUnprocessableEntity, "format_error"
	case errors.Is(err, crypto.ErrAuthentication):
		status, code = http.StatusUnauthorized, "authentication_error"
	case errors.Is(err, tag.ErrTagNotEmpty):
		status, code = http.StatusConflict, "tag_not_empty"
	case model.IsInputError(err):
		status, code = http.StatusBadRequest, "input_error"
	}

	writeJSON(w, status, model.ErrorResponse{
		Error: err.Error(),
		Code:  code,
	})
}
