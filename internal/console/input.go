package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
)

// errNotNumber — введённое слово не является целым числом.
var errNotNumber = errors.New("input is not a number")

// lineResult — одна прочитанная строка вместе с ошибкой чтения.
type lineResult struct {
	line string
	err  error
}

// tokenReader читает ввод по словам, разделённым пробелами, в том числе через границы строк.
// Непрочитанные слова текущей строки остаются для следующих запросов, пока строку не сбросят.
// Строки читает отдельная горутина, поэтому ожидание ввода прерывается отменой контекста.
type tokenReader struct {
	r       *bufio.Reader
	lines   chan lineResult
	pending []string
	done    bool
}

func newTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{r: bufio.NewReader(r)}
}

// pump читает строки до первой ошибки и передаёт их в канал.
func (t *tokenReader) pump() {
	defer close(t.lines)
	for {
		line, err := t.r.ReadString('\n')
		t.lines <- lineResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// readLine ждёт следующую строку или отмену контекста.
// Строка, пришедшая одновременно с отменой, не возвращается.
func (t *tokenReader) readLine(ctx context.Context) (string, error) {
	if t.done {
		return "", io.EOF
	}
	if t.lines == nil {
		t.lines = make(chan lineResult)
		go t.pump()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-t.lines:
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if !ok {
			t.done = true
			return "", io.EOF
		}
		if res.err != nil {
			t.done = true
		}
		return res.line, res.err
	}
}

// next возвращает следующее слово, io.EOF, когда ввод закончился, или ошибку контекста.
func (t *tokenReader) next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	for len(t.pending) == 0 {
		line, err := t.readLine(ctx)
		t.pending = strings.Fields(line)
		if err != nil {
			if len(t.pending) > 0 && !isCanceled(err) {
				break
			}
			return "", err
		}
	}

	tok := t.pending[0]
	t.pending = t.pending[1:]
	return tok, nil
}

// nextInt читает целое число. Если слово не число, остаток строки сбрасывается.
func (t *tokenReader) nextInt(ctx context.Context) (int, error) {
	tok, err := t.next(ctx)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		t.discardLine()
		return 0, errNotNumber
	}
	return n, nil
}

// discardLine отбрасывает непрочитанные слова текущей строки.
func (t *tokenReader) discardLine() {
	t.pending = nil
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
