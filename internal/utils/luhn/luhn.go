package luhn

import "errors"

// ErrNotDigits возвращается для строк, содержащих что-то кроме цифр
var ErrNotDigits = errors.New("luhn: input must contain only digits")

// Validate проверяет номер по алгоритму Луна.
// Последняя цифра номера считается контрольной.
func Validate(number string) bool {
	if len(number) < 2 || !digitsOnly(number) {
		return false
	}

	return checksum(number, false)%10 == 0
}

// CheckDigit вычисляет контрольную цифру, которую нужно дописать к payload
func CheckDigit(payload string) (int, error) {
	if payload == "" || !digitsOnly(payload) {
		return 0, ErrNotDigits
	}

	return (10 - checksum(payload, true)%10) % 10, nil
}

// checksum суммирует цифры с конца строки, удваивая каждую вторую.
// doubleFirst говорит, удваивать ли самую правую цифру.
func checksum(number string, doubleFirst bool) int {
	sum := 0
	double := doubleFirst

	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')

		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		double = !double
	}

	return sum
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
