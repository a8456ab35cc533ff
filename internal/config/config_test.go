package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("CINEREC_TEST_VAR", "valor")

	if got := getEnv("CINEREC_TEST_VAR", "def"); got != "valor" {
		t.Errorf("getEnv = %q, want %q", got, "valor")
	}
	if got := getEnv("CINEREC_TEST_UNSET", "def"); got != "def" {
		t.Errorf("getEnv = %q, want default", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("CINEREC_TEST_INT", "2500")
	t.Setenv("CINEREC_TEST_BAD", "no-es-numero")

	if got := getEnvInt("CINEREC_TEST_INT", 5000); got != 2500 {
		t.Errorf("getEnvInt = %d, want 2500", got)
	}
	if got := getEnvInt("CINEREC_TEST_BAD", 5000); got != 5000 {
		t.Errorf("getEnvInt con valor inválido = %d, want default", got)
	}
	if got := getEnvInt("CINEREC_TEST_INT_UNSET", 5000); got != 5000 {
		t.Errorf("getEnvInt sin setear = %d, want default", got)
	}
}
