package validator

import (
	"strings"
	"testing"

	"adboard/internal/api/apperrors"
	"adboard/internal/api/models"
)

func TestCheckCreateUserRequest(t *testing.T) {
	tests := []struct {
		name       string
		req        models.CreateUserRequest
		wantFields []string
	}{
		{
			name: "valid request",
			req: models.CreateUserRequest{
				UserName: "Tessa Gray",
				Email:    "t.gray@example.org",
				Password: "dkjsnfkjbkafnk223",
			},
			wantFields: nil,
		},
		{
			name: "password too short",
			req: models.CreateUserRequest{
				UserName: "James Carstairs",
				Email:    "j.carstairs@example.org",
				Password: "gkdn",
			},
			wantFields: []string{"password"},
		},
		{
			name: "password of exactly seven chars",
			req: models.CreateUserRequest{
				UserName: "Will",
				Email:    "w@example.org",
				Password: "1234567",
			},
			wantFields: []string{"password"},
		},
		{
			name: "password of exactly eight chars",
			req: models.CreateUserRequest{
				UserName: "Will",
				Email:    "w@example.org",
				Password: "12345678",
			},
			wantFields: nil,
		},
		{
			name:       "everything missing",
			req:        models.CreateUserRequest{},
			wantFields: []string{"user_name", "email", "password"},
		},
		{
			name: "user name too long",
			req: models.CreateUserRequest{
				UserName: strings.Repeat("x", 21),
				Email:    "x@example.org",
				Password: "longenough",
			},
			wantFields: []string{"user_name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := Check(&tt.req)
			if tt.wantFields == nil {
				if verr != nil {
					t.Fatalf("Check() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("Check() = nil, want violations on %v", tt.wantFields)
			}
			if verr.Kind != apperrors.KindValidation {
				t.Errorf("Check() kind = %v, want KindValidation", verr.Kind)
			}
			if len(verr.Violations) != len(tt.wantFields) {
				t.Fatalf("got %d violations %v, want %d", len(verr.Violations), verr.Violations, len(tt.wantFields))
			}
			for i, field := range tt.wantFields {
				if verr.Violations[i].Field != field {
					t.Errorf("violation %d on field %q, want %q", i, verr.Violations[i].Field, field)
				}
			}
		})
	}
}

func TestCheckPasswordMessage(t *testing.T) {
	req := models.CreateUserRequest{
		UserName: "Will",
		Email:    "w@example.org",
		Password: "short",
	}
	verr := Check(&req)
	if verr == nil {
		t.Fatal("Check() = nil, want a password violation")
	}
	if got := verr.Violations[0].Message; got != "password is too short" {
		t.Errorf("violation message = %q, want %q", got, "password is too short")
	}
}

func TestCheckAdvertisementRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.AdvertisementRequest
		wantErr bool
	}{
		{
			name:    "valid",
			req:     models.AdvertisementRequest{Title: "Selling a table", Description: "Oak table, good condition"},
			wantErr: false,
		},
		{
			name:    "empty title",
			req:     models.AdvertisementRequest{Description: "no title"},
			wantErr: true,
		},
		{
			name:    "description over limit",
			req:     models.AdvertisementRequest{Title: "t", Description: strings.Repeat("d", 501)},
			wantErr: true,
		},
		{
			name:    "description at limit",
			req:     models.AdvertisementRequest{Title: "t", Description: strings.Repeat("d", 500)},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := Check(&tt.req)
			if (verr != nil) != tt.wantErr {
				t.Errorf("Check() = %v, wantErr %v", verr, tt.wantErr)
			}
		})
	}
}
