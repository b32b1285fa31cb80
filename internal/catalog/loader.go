// Package catalog читает каталог товаров из текстового файла.
//
// Формат строки: "<id> <price> <name>". Первые два поля разделены пробелами,
// остаток строки без ведущих пробелов — название. Строки другого вида пропускаются.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shopcart/internal/domain"
)

// Result — итог разбора каталога.
type Result struct {
	Products []domain.Product
	// Skipped — количество пропущенных некорректных строк.
	Skipped int
}

// Load открывает файл и разбирает его. Если файл не открывается, возвращает ErrCatalogUnavailable.
func Load(path string, logger *log.Entry) (Result, error) {
	if logger == nil {
		logger = log.WithField("component", "catalog")
	}

	f, err := os.Open(path)
	if err != nil {
		logger.WithError(err).WithField("path", path).Error("cannot open catalog file")
		return Result{}, fmt.Errorf("%w: %s", domain.ErrCatalogUnavailable, path)
	}
	defer f.Close()

	res, err := Parse(f)
	if err != nil {
		return Result{}, fmt.Errorf("read catalog %s: %w", path, err)
	}

	logger.WithFields(log.Fields{
		"path":     path,
		"products": len(res.Products),
		"skipped":  res.Skipped,
	}).Info("catalog loaded")
	return res, nil
}

// Parse разбирает каталог построчно. Позиции товаров назначаются по порядку, начиная с 1;
// id из файла сохраняется в SKU. Длина строки не ограничена.
func Parse(r io.Reader) (Result, error) {
	var res Result

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			product, ok := parseLine(strings.TrimSuffix(line, "\n"), len(res.Products)+1)
			if ok {
				res.Products = append(res.Products, product)
			} else {
				res.Skipped++
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, err
		}
	}

	return res, nil
}

func parseLine(line string, position int) (domain.Product, bool) {
	line = strings.TrimSuffix(line, "\r")

	idTok, rest := nextToken(line)
	priceTok, rest := nextToken(rest)
	if idTok == "" || priceTok == "" {
		return domain.Product{}, false
	}

	sku, err := strconv.Atoi(idTok)
	if err != nil {
		return domain.Product{}, false
	}
	price, err := decimal.NewFromString(priceTok)
	if err != nil {
		return domain.Product{}, false
	}

	product := domain.Product{
		ID:    position,
		SKU:   sku,
		Name:  strings.TrimLeftFunc(rest, unicode.IsSpace),
		Price: price,
	}
	if errs := product.Validate(); len(errs) > 0 {
		return domain.Product{}, false
	}
	return product, true
}

// nextToken возвращает первое слово s и остаток строки сразу после него.
func nextToken(s string) (string, string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}
