package transfer

import (
	"fmt"
	"strings"
)

// Kind is a machine-readable tag for a validation failure. The user-facing
// message stays in the deployment language (Russian), the kind is what
// callers branch on.
type Kind string

const (
	KindMalformedWorkbook     Kind = "malformed_workbook"
	KindUnknownCategory       Kind = "unknown_category"
	KindInvalidHeaderContract Kind = "invalid_header_contract"
	KindUnknownProductCode    Kind = "unknown_product_code"
	KindCategoryMismatch      Kind = "category_mismatch"
	KindInvalidPriceFormat    Kind = "invalid_price_format"
	KindDuplicateProductCode  Kind = "duplicate_product_code"
	KindUnknownParameter      Kind = "unknown_parameter"
	KindNoSubmittedData       Kind = "no_submitted_data"
)

// Error is a validation failure that aborts the whole operation.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func errMalformedWorkbook() *Error {
	return &Error{
		Kind:    KindMalformedWorkbook,
		Message: "Некорректный загружаемый файл",
	}
}

func errUnknownCategory(category string) *Error {
	return &Error{
		Kind:    KindUnknownCategory,
		Message: fmt.Sprintf("Категории %s не существует", category),
	}
}

func errInvalidPriceHeader() *Error {
	return &Error{
		Kind: KindInvalidHeaderContract,
		Message: "Некорректные названия колонок. " +
			"Убедитесь, что всего 3 колонки и их названия: name, code, price",
	}
}

func errInvalidFullHeader() *Error {
	return &Error{
		Kind: KindInvalidHeaderContract,
		Message: "Некорректные названия колонок. " +
			"Убедитесь, что первых 7 колонок имеют названия: " +
			"name, code, first_text, price, provider, num_in_stock, destination",
	}
}

func errUnknownProductCode(code string) *Error {
	return &Error{
		Kind:    KindUnknownProductCode,
		Message: fmt.Sprintf("Товара с кодом %s не существует", code),
	}
}

func errCategoryMismatch(category, code string) *Error {
	return &Error{
		Kind:    KindCategoryMismatch,
		Message: fmt.Sprintf("В категории %s не существует товара с кодом %s", category, code),
	}
}

func errInvalidPriceFormat(code string) *Error {
	return &Error{
		Kind:    KindInvalidPriceFormat,
		Message: fmt.Sprintf("Товар с кодом %s имеет неверный формат цены", code),
	}
}

func errDuplicateProductCode(codes []string) *Error {
	return &Error{
		Kind:    KindDuplicateProductCode,
		Message: fmt.Sprintf("Обнаружено дублирование товаров с кодом: %s", strings.Join(codes, ", ")),
	}
}

func errUnknownParameter(parameter, category string) *Error {
	return &Error{
		Kind:    KindUnknownParameter,
		Message: fmt.Sprintf("Не существует параметра %s в категории %s", parameter, category),
	}
}

func errStagedPriceData(code string) *Error {
	return &Error{
		Kind: KindInvalidPriceFormat,
		Message: fmt.Sprintf("Товар с кодом %s содержит некорректные данные. "+
			"Убедитесь в том, что в поле цена указано корректное число", code),
	}
}

func errNoSubmittedData() *Error {
	return &Error{
		Kind:    KindNoSubmittedData,
		Message: "Не переданы данные для сохранения",
	}
}
