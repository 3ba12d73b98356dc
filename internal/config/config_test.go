package config

import "testing"

func TestStripeEnabled(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")
	if Load().StripeEnabled() {
		t.Error("stripe must be reported disabled without a secret key")
	}

	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	if !Load().StripeEnabled() {
		t.Error("stripe should be enabled once a secret key is set")
	}
}

func TestDegradeFlagDefaultsOn(t *testing.T) {
	t.Setenv("DEGRADE_ON_GATEWAY_FAILURE", "")
	if !Load().DegradeOnGatewayFailure {
		t.Error("degrade fallback should default on")
	}

	t.Setenv("DEGRADE_ON_GATEWAY_FAILURE", "0")
	if Load().DegradeOnGatewayFailure {
		t.Error("DEGRADE_ON_GATEWAY_FAILURE=0 must switch the fallback off")
	}
}
