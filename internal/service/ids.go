package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Смена неймспейсов ломает повторы по ключам, выданным до смены.
var (
	orderNamespace    = uuid.MustParse("7d0f4c52-3b8e-4f63-9a51-2c9e8f0b6a17")
	recoveryNamespace = uuid.MustParse("c3a1e9d4-58b2-4e07-b6f1-94d2a07c3e58")
)

func orderIDFromKey(key string) string {
	return "order_" + uuid.NewSHA1(orderNamespace, []byte(key)).String()
}

func newOrderID() string {
	return "order_" + uuid.NewString()
}

// Восстановленные заказы живут в своём неймспейсе: клиентский ключ
// идемпотентности не может совпасть с их id.
func recoveryID(name string) string {
	return "order_" + uuid.NewSHA1(recoveryNamespace, []byte(name)).String()
}

func recoveryIDForLink(linkID string) string {
	return recoveryID("link:" + linkID)
}

func recoveryIDForNumber(orderNumber string) string {
	return recoveryID("number:" + orderNumber)
}

// ORD_<unix millis>_<6 hex>
func newOrderNumber(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("ORD_%d_%s", now.UnixMilli(), suffix)
}
