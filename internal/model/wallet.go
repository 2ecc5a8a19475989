package model

// CreateRequest is the body of POST /wallet/create
type CreateRequest struct {
	PIN  string `json:"pin"`
	Kind string `json:"kind"` // "key" for a single Solana key, "seed" for a multi-chain master seed
}

// ImportRequest is the body of POST /wallet/import
type ImportRequest struct {
	PIN      string `json:"pin"`
	Mnemonic string `json:"mnemonic"`
}

// ReadRequest is the body of POST /wallet/read and POST /wallet/balance
type ReadRequest struct {
	PIN string `json:"pin"`
}

// SignRequest is the body of POST /wallet/sign. Message is signed as UTF-8 bytes.
type SignRequest struct {
	PIN     string `json:"pin"`
	Chain   string `json:"chain"` // "solana" or "ethereum"
	Message string `json:"message"`
}

// CreateResponse is returned by create and import flows.
// Mnemonic is present for seed wallets only and is shown exactly once.
type CreateResponse struct {
	Success         bool   `json:"success"`
	Kind            string `json:"kind"`
	SolanaAddress   string `json:"solanaAddress,omitempty"`
	EthereumAddress string `json:"ethereumAddress,omitempty"`
	Mnemonic        string `json:"mnemonic,omitempty"`
	QR              string `json:"qr,omitempty"`
}

// ReadResponse is returned by POST /wallet/read
type ReadResponse struct {
	Kind            string `json:"kind"`
	SolanaAddress   string `json:"solanaAddress,omitempty"`
	EthereumAddress string `json:"ethereumAddress,omitempty"`
	QR              string `json:"qr,omitempty"`
}

// ProbeResponse is returned by GET /wallet/probe
type ProbeResponse struct {
	Recognized bool `json:"recognized"`
}

// SignResponse is returned by POST /wallet/sign
type SignResponse struct {
	Chain     string `json:"chain"`
	Signature string `json:"signature"`
}

// BalanceResponse is returned by POST /wallet/balance.
// Amounts are decimal strings to avoid float precision loss.
type BalanceResponse struct {
	Kind            string `json:"kind"`
	SolanaAddress   string `json:"solanaAddress,omitempty"`
	SOL             string `json:"sol,omitempty"`
	EthereumAddress string `json:"ethereumAddress,omitempty"`
	ETH             string `json:"eth,omitempty"`
}
