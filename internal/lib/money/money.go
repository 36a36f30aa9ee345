// Package money реализует разбор и форматирование денежных сумм.
//
// Суммы хранятся в минорных единицах валюты (int64), чтобы повторная агрегация
// не накапливала ошибок округления. Из JSON суммы приходят десятичными
// строками и разбираются вручную.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidAmount возвращается при некорректной или отрицательной сумме.
var ErrInvalidAmount = errors.New("invalid amount")

// Parse преобразует десятичную строку в минорные единицы.
//
// Принимаются разделители точка (12.34) и запятая (12,34); третий десятичный
// знак округляется по правилу «половина вверх». Отрицательные суммы и знаки
// запрещены, ноль допустим.
//
// Примеры:
//
//	Parse("12.34")  -> 1234
//	Parse("12,34")  -> 1234
//	Parse("12.344") -> 1234 (округление вниз)
//	Parse("12.345") -> 1235 (округление вверх)
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}

	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	return iv*100 + fracCents, nil
}

// Format возвращает сумму в минорных единицах как десятичную строку
// с двумя знаками после точки. Используется в текстах уведомлений.
func Format(amount int64) string {
	return fmt.Sprintf("%d.%02d", amount/100, amount%100)
}
