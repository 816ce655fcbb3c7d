package world

import "sync/atomic"

// nonceCounter общий для процесса счетчик версий чанков.
// Значения никогда не повторяются и только растут.
var nonceCounter atomic.Uint32

// freshNonce возвращает следующее значение счетчика
func freshNonce() uint32 {
	return nonceCounter.Add(1) - 1
}
