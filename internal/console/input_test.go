package console

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenReader_TokensAcrossLines(t *testing.T) {
	r := newTokenReader(strings.NewReader("1 2\n\n   3\n4"))

	for _, want := range []int{1, 2, 3, 4} {
		got, err := r.nextInt(context.Background())
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := r.nextInt(context.Background())
	require.True(t, errors.Is(err, io.EOF))
}

func TestTokenReader_NotNumberDiscardsLine(t *testing.T) {
	r := newTokenReader(strings.NewReader("abc 5 6\n7\n"))

	_, err := r.nextInt(context.Background())
	require.ErrorIs(t, err, errNotNumber)

	got, err := r.nextInt(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, got)
}

func TestTokenReader_DiscardLine(t *testing.T) {
	r := newTokenReader(strings.NewReader("9 10 11\n12\n"))

	got, err := r.nextInt(context.Background())
	require.NoError(t, err)
	require.Equal(t, 9, got)

	r.discardLine()
	got, err = r.nextInt(context.Background())
	require.NoError(t, err)
	require.Equal(t, 12, got)
}

func TestTokenReader_Word(t *testing.T) {
	r := newTokenReader(strings.NewReader("  4111-1111-1111-1111  \n"))

	tok, err := r.next(context.Background())
	require.NoError(t, err)
	require.Equal(t, "4111-1111-1111-1111", tok)
}

func TestTokenReader_CancelWhileWaiting(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	r := newTokenReader(pr)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := r.nextInt(ctx)
		errCh <- err
	}()

	cancel()
	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("nextInt did not return after cancel")
	}

	_, err := r.next(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
