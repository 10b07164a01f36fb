package game

import "github.com/valyala/fastrand"

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 6
)

// NewSessionCode генерирует 6-символьный код входа. Уникальность среди
// активных сессий не гарантируется, 36^6 комбинаций делают коллизию
// практически невозможной
func NewSessionCode() string {
	buf := make([]byte, codeLength)
	for i := range buf {
		buf[i] = codeAlphabet[fastrand.Uint32n(uint32(len(codeAlphabet)))]
	}
	return string(buf)
}
