package money

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// leadingNumber reproduz a leitura de prefixo numérico: "12.5abc" vira 12.5
var leadingNumber = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)

var emptyValues = map[string]struct{}{
	"":          {},
	"nan":       {},
	"undefined": {},
	"null":      {},
}

// Parse converte um valor monetário heterogêneo (número, string no formato
// brasileiro "3.890,75", string com símbolo de moeda) em float64.
// Qualquer valor que não possa ser interpretado resulta em 0.
func Parse(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case decimal.Decimal:
		return finite(v.InexactFloat64())
	case *decimal.Decimal:
		if v == nil {
			return 0
		}
		return finite(v.InexactFloat64())
	case json.Number:
		return ParseString(string(v))
	case string:
		return ParseString(v)
	case *string:
		if v == nil {
			return 0
		}
		return ParseString(*v)
	default:
		return 0
	}
}

// ParseNonNegative é como Parse, mas nunca retorna valores negativos
func ParseNonNegative(value any) float64 {
	return math.Max(0, Parse(value))
}

// ParseString interpreta strings monetárias. Se houver vírgula, o formato é
// tratado como brasileiro: pontos são separadores de milhar e a vírgula é o
// separador decimal.
func ParseString(s string) float64 {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if _, empty := emptyValues[trimmed]; empty {
		return 0
	}

	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, trimmed)

	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	number := leadingNumber.FindString(cleaned)
	if number == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0
	}

	return finite(parsed)
}

// ToDecimal converte o valor para decimal com duas casas, sem negativos
func ToDecimal(value any) decimal.Decimal {
	return decimal.NewFromFloat(ParseNonNegative(value)).Round(2)
}

// Format formata o valor no padrão pt-BR com duas casas decimais ("3.890,75")
func Format(amount float64) string {
	return FormatDecimal(decimal.NewFromFloat(finite(amount)))
}

// FormatDecimal formata um decimal no padrão pt-BR com duas casas decimais
func FormatDecimal(amount decimal.Decimal) string {
	rounded := amount.Round(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	fixed := rounded.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	return sign + groupThousands(intPart) + "," + fracPart
}

// FormatBRL formata o valor com o símbolo do real ("R$ 3.890,75")
func FormatBRL(amount float64) string {
	return "R$ " + Format(amount)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}

	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
