package razorpay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	const secret = "test_key_secret"

	sig := SignPayment("order_ABC123", "pay_XYZ789", secret)
	assert.True(t, VerifySignature("order_ABC123", "pay_XYZ789", sig, secret))
}

func TestVerifySignatureRejectsMutations(t *testing.T) {
	const secret = "test_key_secret"

	sig := SignPayment("order_ABC123", "pay_XYZ789", secret)

	// flip one hex character
	mutated := []byte(sig)
	if mutated[0] == 'a' {
		mutated[0] = 'b'
	} else {
		mutated[0] = 'a'
	}
	assert.False(t, VerifySignature("order_ABC123", "pay_XYZ789", string(mutated), secret))

	assert.False(t, VerifySignature("order_ABC123", "pay_XYZ789", sig[:len(sig)-1], secret))
	assert.False(t, VerifySignature("order_OTHER", "pay_XYZ789", sig, secret))
	assert.False(t, VerifySignature("order_ABC123", "pay_OTHER", sig, secret))
	assert.False(t, VerifySignature("order_ABC123", "pay_XYZ789", sig, "wrong_secret"))
}
