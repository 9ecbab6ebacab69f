package cmd

import "testing"

func TestEnvOr(t *testing.T) {
	t.Setenv("NOTES_TEST_KEY", "from-env")
	if got := envOr("NOTES_TEST_KEY", "fallback"); got != "from-env" {
		t.Errorf("envOr = %q, want the environment value", got)
	}
	if got := envOr("NOTES_TEST_UNSET_KEY", "fallback"); got != "fallback" {
		t.Errorf("envOr = %q, want the fallback", got)
	}
}
