package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/foodcart/internal/ports"
)

// InputFormat — формат файла заявок.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"  // один объект или массив заявок
	FormatJSONL InputFormat = "jsonl" // заявка на строку
)

// ErrNoValidOrders — в файле были заявки, но ни одна не прошла проверку.
var ErrNoValidOrders = errors.New("no valid orders")

const maxLineBytes = 10 << 20

// Rejection — отклонённая заявка: номер строки JSONL или позиция в массиве (с 1).
type Rejection struct {
	Line int
	Err  error
}

// Report — итог проверки файла заявок.
type Report struct {
	Valid    int
	Rejected []Rejection
}

func (r Report) Summary() string {
	return fmt.Sprintf("%d valid / %d invalid", r.Valid, len(r.Rejected))
}

// ValidateFile — проверяет файл заявок и пишет валидные в ow канонично (телефон в E.164), по одной на строку.
// Ошибка — чтение/запись или ErrNoValidOrders; отдельные отказы только в Report.
func ValidateFile(ctx context.Context, validator ports.OrderValidator, filePath string, format InputFormat, ow io.Writer) (Report, error) {
	if format == FormatAuto {
		format = FormatJSON
		if strings.EqualFold(filepath.Ext(filePath), ".jsonl") {
			format = FormatJSONL
		}
	}

	var (
		rep Report
		err error
	)
	switch format {
	case FormatJSON, FormatJSONL:
	default:
		return rep, fmt.Errorf("unsupported format: %s", format)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return rep, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	if format == FormatJSONL {
		rep, err = ValidateJSONLStream(ctx, validator, file, ow)
	} else {
		rep, err = ValidateJSONDocument(ctx, validator, file, ow)
	}
	if err != nil {
		return rep, err
	}
	if rep.Valid == 0 && len(rep.Rejected) > 0 {
		return rep, ErrNoValidOrders
	}
	return rep, nil
}

// ValidateJSONLStream — заявка на строку, пустые строки пропускаются.
func ValidateJSONLStream(ctx context.Context, validator ports.OrderValidator, ir io.Reader, ow io.Writer) (Report, error) {
	var rep Report

	scanner := bufio.NewScanner(ir)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for line := 1; scanner.Scan(); line++ {
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		if err := rep.check(ctx, validator, line, raw, ow); err != nil {
			return rep, err
		}
	}
	if err := scanner.Err(); err != nil {
		return rep, fmt.Errorf("scan: %w", err)
	}
	return rep, nil
}

// ValidateJSONDocument — один объект заявки или массив объектов.
func ValidateJSONDocument(ctx context.Context, validator ports.OrderValidator, ir io.Reader, ow io.Writer) (Report, error) {
	var rep Report

	raw, err := io.ReadAll(ir)
	if err != nil {
		return rep, fmt.Errorf("read file: %w", err)
	}
	raw = bytes.TrimSpace(raw)

	if len(raw) == 0 || raw[0] != '[' {
		err := rep.check(ctx, validator, 1, raw, ow)
		return rep, err
	}

	var batch []json.RawMessage
	if err := json.Unmarshal(raw, &batch); err != nil {
		rep.Rejected = append(rep.Rejected, Rejection{Line: 1, Err: fmt.Errorf("%w: %v", ErrInvalidJSON, err)})
		return rep, nil
	}
	for i, item := range batch {
		if err := rep.check(ctx, validator, i+1, item, ow); err != nil {
			return rep, err
		}
	}
	return rep, nil
}

// check — валидирует одну заявку; ошибка только при сбое записи.
func (r *Report) check(ctx context.Context, validator ports.OrderValidator, line int, raw []byte, ow io.Writer) error {
	req, err := ValidateOrderFromJSON(ctx, validator, raw)
	if err != nil {
		r.Rejected = append(r.Rejected, Rejection{Line: line, Err: err})
		return nil
	}
	if phone, pErr := NormalizePhone(req.Phonenumber); pErr == nil {
		req.Phonenumber = phone
	}
	canonical, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal order %d: %w", line, err)
	}
	if _, err := ow.Write(append(canonical, '\n')); err != nil {
		return fmt.Errorf("write order %d: %w", line, err)
	}
	r.Valid++
	return nil
}
