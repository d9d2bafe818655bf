package utils

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("SECRET_JWT", "clave-de-prueba-para-tests")

	util := NewAccessTokenUtil()
	token, err := util.EncodeToken(map[string]any{
		"sub":   "64f0c2a1b3d4e5f601234567",
		"email": "ana@example.com",
		"role":  "admin",
	}, time.Hour)
	if err != nil {
		t.Fatalf("EncodeToken() error: %v", err)
	}

	claims, err := util.DecodeToken(token)
	if err != nil {
		t.Fatalf("DecodeToken() error: %v", err)
	}

	if claims["sub"] != "64f0c2a1b3d4e5f601234567" {
		t.Errorf("sub = %v", claims["sub"])
	}
	if claims["email"] != "ana@example.com" || claims["role"] != "admin" {
		t.Errorf("claims = %v", claims)
	}
	if _, ok := claims["iat"].(float64); !ok {
		t.Error("falta iat")
	}
	if _, ok := claims["exp"].(float64); !ok {
		t.Error("falta exp")
	}
}

func TestAccessTokenExpired(t *testing.T) {
	t.Setenv("SECRET_JWT", "clave-de-prueba-para-tests")

	util := NewAccessTokenUtil()
	token, err := util.EncodeToken(map[string]any{"sub": "abc"}, -time.Minute)
	if err != nil {
		t.Fatalf("EncodeToken() error: %v", err)
	}

	if _, err := util.DecodeToken(token); err == nil {
		t.Error("un token vencido debe rechazarse")
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	t.Setenv("SECRET_JWT", "clave-original")

	util := NewAccessTokenUtil()
	token, err := util.EncodeToken(map[string]any{"sub": "abc"}, time.Hour)
	if err != nil {
		t.Fatalf("EncodeToken() error: %v", err)
	}

	t.Setenv("SECRET_JWT", "otra-clave")
	if _, err := util.DecodeToken(token); err == nil {
		t.Error("un token cifrado con otra clave debe rechazarse")
	}
}

func TestAccessTokenGarbage(t *testing.T) {
	t.Setenv("SECRET_JWT", "clave-de-prueba-para-tests")

	util := NewAccessTokenUtil()
	if _, err := util.DecodeToken("no.es.un.token"); err == nil {
		t.Error("basura debe rechazarse")
	}
}
