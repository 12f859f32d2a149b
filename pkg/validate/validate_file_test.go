package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

func TestValidateFile_JSON_Auto_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "one.json")
	if err := os.WriteFile(path, []byte(minimalValidRequestJSON("ext-1", "+79161234567")), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	rep, err := ValidateFile(ctx, validator, path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary := rep.Summary(); summary != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatalf("expected non-empty output")
	}
}

func TestValidateFile_JSONL_Auto_Mixed(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "list.jsonl")
	content := oneLineJSON(minimalValidRequestJSON("ext-1", "+79161234567")) + "\n" +
		oneLineJSON(minimalValidRequestJSON("ext-2", "")) + "\n" + // нет телефона
		oneLineJSON(minimalValidRequestJSON("ext-3", "+79167654321")) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	rep, err := ValidateFile(ctx, validator, path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary := rep.Summary(); summary != "2 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(lines))
	}
}

func TestValidateFile_JSON_Invalid(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	// неизвестное поле
	raw := `{"unknown":1,` + minimalValidRequestJSONFields("ext-x", "+79161234567")
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	rep, err := ValidateFile(ctx, validator, path, FormatJSON, &out)
	if !errors.Is(err, ErrNoValidOrders) {
		t.Fatalf("want ErrNoValidOrders, got %v", err)
	}
	if len(rep.Rejected) != 1 || !errors.Is(rep.Rejected[0].Err, ErrInvalidJSON) {
		t.Fatalf("unexpected rejections: %+v", rep.Rejected)
	}
	if summary := rep.Summary(); summary != "0 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if out.String() != "" {
		t.Fatalf("output must be empty for invalid single JSON")
	}
}

func TestValidateFile_ExplicitFormat_IgnoresExt(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	content := oneLineJSON(minimalValidRequestJSON("ext-1", "+79161234567")) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	rep, err := ValidateFile(ctx, validator, path, FormatJSONL, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary := rep.Summary(); summary != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
}

func TestValidateFile_OpenError(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	var out bytes.Buffer
	_, err := ValidateFile(ctx, validator, "no-such-file.json", FormatAuto, &out)
	if err == nil {
		t.Fatalf("expected open error")
	}
}

func TestValidateFile_UnsupportedFormat(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "one.json")
	_ = os.WriteFile(path, []byte(minimalValidRequestJSON("ext-1", "+79161234567")), 0o600)

	var out bytes.Buffer
	_, err := ValidateFile(ctx, validator, path, InputFormat("yaml"), &out)
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected unsupported format error, got: %v", err)
	}
}

func TestValidateFile_JSONL_RejectionLines(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "list.jsonl")
	content := oneLineJSON(minimalValidRequestJSON("ext-1", "+79161234567")) + "\n" +
		"\n" + // пустая строка учитывается в нумерации
		"not-a-json\n" +
		oneLineJSON(minimalValidRequestJSON("ext-4", "not a phone")) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	rep, err := ValidateFile(ctx, NewOrderValidator(), path, FormatAuto, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.Rejected) != 2 || rep.Rejected[0].Line != 3 || rep.Rejected[1].Line != 4 {
		t.Fatalf("unexpected rejections: %+v", rep.Rejected)
	}
	if !errors.Is(rep.Rejected[0].Err, ErrInvalidJSON) || !errors.Is(rep.Rejected[1].Err, ErrInvalidOrder) {
		t.Fatalf("unexpected rejection errors: %v / %v", rep.Rejected[0].Err, rep.Rejected[1].Err)
	}
}

func TestValidateJSONDocument_Batch(t *testing.T) {
	ctx := context.Background()

	raw := "[" + minimalValidRequestJSON("ext-1", "+79161234567") + "," +
		minimalValidRequestJSON("ext-2", "") + "," +
		minimalValidRequestJSON("ext-3", "8 (916) 765-43-21") + "]"

	var out bytes.Buffer
	rep, err := ValidateJSONDocument(ctx, NewOrderValidator(), strings.NewReader(raw), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Valid != 2 || len(rep.Rejected) != 1 || rep.Rejected[0].Line != 2 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(lines))
	}
	var last domain.OrderRequest
	if err := json.Unmarshal([]byte(lines[1]), &last); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if last.ExternalID != "ext-3" || last.Phonenumber != "+79167654321" {
		t.Fatalf("unexpected canonical order: %+v", last)
	}
}

func TestValidateJSONLStream_LargeLine(t *testing.T) {
	ctx := context.Background()

	bigComment := strings.Repeat("X", 200_000) // > 64KB
	raw := `{
	  "firstname":"Иван","lastname":"Петров","phonenumber":"+79161234567",
	  "address":"Москва","comment":"` + bigComment + `",
	  "products":[{"product":1,"quantity":1}]
	}`

	var out bytes.Buffer
	rep, err := ValidateJSONLStream(ctx, NewOrderValidator(), strings.NewReader(oneLineJSON(raw)+"\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Valid != 1 || len(rep.Rejected) != 0 {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

// ---- функции для тестирования ----

func oneLineJSON(s string) string {
	var b bytes.Buffer
	_ = json.Compact(&b, []byte(s))
	return b.String()
}
