package tag

import (
	"context"
	"path/filepath"
	"testing"

	"tagvault/internal/envelope"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "tag.json"))
}

func TestStoreScanNoTag(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Scan(context.Background())
	assert.ErrorIs(t, err, ErrNoTag)
}

func TestStoreWriteScanRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	written := []Record{WalletRecord("vaultkey1:token")}
	require.NoError(t, store.Write(ctx, written))

	records, err := store.Scan(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, RecordTypeMIME, records[0].Type)
	assert.Equal(t, MediaTypeWallet, records[0].MediaType)
	assert.Equal(t, []byte("vaultkey1:token"), records[0].Payload)
}

func TestStoreRefusesOverwrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, []Record{WalletRecord("vaultkey1:a")}))

	err := store.Write(ctx, []Record{WalletRecord("vaultkey1:b")})
	assert.ErrorIs(t, err, ErrTagNotEmpty)
}

func TestStoreWipeAllowsRewrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, []Record{WalletRecord("vaultkey1:a")}))
	require.NoError(t, store.Wipe())
	require.NoError(t, store.Write(ctx, []Record{WalletRecord("vaultkey1:b")}))
}

func TestStoreHonorsCancellation(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Write(ctx, []Record{WalletRecord("vaultkey1:a")})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = store.Scan(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFindEnvelopeSkipsForeignRecords(t *testing.T) {
	env := envelope.Encode(envelope.KindMasterSeed, "token")
	records := []Record{
		{Type: "text", MediaType: "text/plain", Payload: []byte("hello")},
		{Type: RecordTypeMIME, MediaType: "application/json", Payload: []byte(`{"x":1}`)},
		{Type: RecordTypeMIME, MediaType: MediaTypeWallet, Payload: []byte("  " + env + "\n")},
	}

	found, ok := FindEnvelope(records)
	require.True(t, ok)
	assert.Equal(t, env, found)
}

func TestFindEnvelopeNoneRecognized(t *testing.T) {
	records := []Record{
		{Type: "text", MediaType: "text/plain", Payload: []byte("https://example.com")},
	}

	_, ok := FindEnvelope(records)
	assert.False(t, ok)
}
