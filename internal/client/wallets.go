package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/crestfin/admin-console/internal/core/domain"
	"github.com/crestfin/admin-console/internal/core/ports"
	"github.com/crestfin/admin-console/internal/pkg/validate"
)

// WalletsClient covers customer wallets and their transaction ledgers.
type WalletsClient struct {
	rest *Client
}

func NewWallets(baseURL string, creds ports.CredentialStore, opts ...Option) *WalletsClient {
	return &WalletsClient{rest: New(baseURL, "wallets", creds, opts...)}
}

// List returns a page of wallets.
func (w *WalletsClient) List(ctx context.Context, filters Params) domain.Result[domain.WalletList] {
	return Do[domain.WalletList](ctx, w.rest, http.MethodGet, "/wallets", filters.Encode(), nil)
}

// GetByID fetches a single wallet.
func (w *WalletsClient) GetByID(ctx context.Context, id string) domain.Result[domain.Wallet] {
	return Do[domain.Wallet](ctx, w.rest, http.MethodGet, "/wallets/"+url.PathEscape(id), nil, nil)
}

// Transactions returns a page of ledger entries for one wallet.
func (w *WalletsClient) Transactions(ctx context.Context, walletID string, filters Params) domain.Result[domain.TransactionList] {
	path := "/wallets/" + url.PathEscape(walletID) + "/transactions"
	return Do[domain.TransactionList](ctx, w.rest, http.MethodGet, path, filters.Encode(), nil)
}

// UpdateStatus forwards a wallet state change (freeze, unfreeze, close) and
// relays the backend's verdict.
func (w *WalletsClient) UpdateStatus(ctx context.Context, id string, status domain.WalletStatus, note string) domain.Result[domain.Wallet] {
	req := statusChangeRequest{Status: string(status), Note: note}
	if err := validate.Struct(req); err != nil {
		return domain.Fail[domain.Wallet](domain.ClassUnknown, err.Error(), 0)
	}
	return Do[domain.Wallet](ctx, w.rest, http.MethodPatch, "/wallets/"+url.PathEscape(id)+"/status", nil, req)
}
