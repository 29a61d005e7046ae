package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Madhav-Gupta-28/bazar-backend-go/config"
	"github.com/Madhav-Gupta-28/bazar-backend-go/models"
	"github.com/Madhav-Gupta-28/bazar-backend-go/settings"
)

type recordingStore struct {
	fields map[string]interface{}
	err    error
}

func (r *recordingStore) Upsert(_ context.Context, fields map[string]interface{}) (*models.Setting, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.fields == nil {
		r.fields = map[string]interface{}{}
	}
	for k, v := range fields {
		r.fields[k] = v
	}
	return &models.Setting{Name: models.StoreSettingName, Values: r.fields}, nil
}

func opener(store *recordingStore, closed *bool) storeOpener {
	return func(context.Context, *config.Config) (settings.Store, func(), error) {
		return store, func() { *closed = true }, nil
	}
}

func run(t *testing.T, open storeOpener, verify func(string) error, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(open, verify)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func noVerify(string) error { return nil }

func TestStripeCommand(t *testing.T) {
	t.Setenv("STRIPE_PUBLISHABLE_KEY", "pk_test_abc")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_secret")

	store := &recordingStore{}
	var closed bool
	out, err := run(t, opener(store, &closed), noVerify, "stripe")
	if err != nil {
		t.Fatalf("stripe: %v", err)
	}
	if store.fields[models.SettingStripeStatus] != true || store.fields[models.SettingStripeSecret] != "sk_test_secret" {
		t.Fatalf("fields = %v", store.fields)
	}
	if strings.Contains(out, "sk_test_secret") {
		t.Fatalf("secret printed: %s", out)
	}
	if !strings.Contains(out, "***hidden***") || !closed {
		t.Fatalf("out = %s, closed = %v", out, closed)
	}
}

func TestStripeCommandVerifyFailureSkipsWrite(t *testing.T) {
	t.Setenv("STRIPE_PUBLISHABLE_KEY", "pk_test_abc")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_revoked")

	store := &recordingStore{}
	var closed bool
	rejected := errors.New("invalid api key")
	_, err := run(t, opener(store, &closed), func(string) error { return rejected }, "stripe", "--verify")
	if !errors.Is(err, rejected) {
		t.Fatalf("err = %v, want %v", err, rejected)
	}
	if store.fields != nil {
		t.Fatalf("store written: %v", store.fields)
	}
}

func TestStripeCommandMissingKeys(t *testing.T) {
	t.Setenv("STRIPE_PUBLISHABLE_KEY", "")
	t.Setenv("STRIPE_SECRET_KEY", "")

	var closed bool
	_, err := run(t, opener(&recordingStore{}, &closed), noVerify, "stripe")
	if !errors.Is(err, settings.ErrMissingCredentials) {
		t.Fatalf("err = %v", err)
	}
}

func TestGoogleCommandFromArgs(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "")
	t.Setenv("GOOGLE_CLIENT_SECRET", "")
	t.Setenv("GOOGLE_LOGIN_STATUS", "")
	t.Setenv("NEXT_PUBLIC_STORE_DOMAIN", "https://shop.example.com")

	store := &recordingStore{}
	var closed bool
	out, err := run(t, opener(store, &closed), noVerify, "google", "client-id.apps.googleusercontent.com", "shh", "true")
	if err != nil {
		t.Fatalf("google: %v", err)
	}
	if store.fields[models.SettingGoogleLoginStatus] != true || store.fields[models.SettingGoogleSecret] != "shh" {
		t.Fatalf("fields = %v", store.fields)
	}
	if !strings.Contains(out, "https://shop.example.com/api/auth/callback/google") {
		t.Fatalf("redirect uri missing: %s", out)
	}
	if !closed {
		t.Fatal("connection not closed")
	}
}

func TestGoogleCommandStoreError(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "secret")

	var closed bool
	_, err := run(t, opener(&recordingStore{err: errors.New("not primary")}, &closed), noVerify, "google")
	if err == nil {
		t.Fatal("expected error from store")
	}
}
