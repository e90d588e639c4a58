package password

import (
	"testing"
)

func TestGetHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "regular password",
			password: "password123",
			wantErr:  false,
		},
		{
			name:     "password with special chars",
			password: "p@ssw0rd!@#$%^&*()",
			wantErr:  false,
		},
		{
			name:     "long password",
			password: "verylongpasswordwithmorethanfiftycharacters",
			wantErr:  false,
		},
		{
			name:     "short password",
			password: "short",
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotHash, err := GetHash(tt.password)

			if (err != nil) != tt.wantErr {
				t.Errorf("GetHash() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && gotHash == "" {
				t.Error("GetHash() returned empty hash")
			}

			if !tt.wantErr {
				err = CompareHash(gotHash, tt.password)
				if err != nil {
					t.Errorf("Generated hash doesn't work with original password: %v", err)
				}
			}
		})
	}
}

func TestGetHash_SaltIsUniquePerCall(t *testing.T) {
	first, err := GetHash("same_password")
	if err != nil {
		t.Fatalf("GetHash() error = %v", err)
	}
	second, err := GetHash("same_password")
	if err != nil {
		t.Fatalf("GetHash() error = %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password must differ")
	}
	if err := CompareHash(first, "same_password"); err != nil {
		t.Errorf("first hash doesn't verify: %v", err)
	}
	if err := CompareHash(second, "same_password"); err != nil {
		t.Errorf("second hash doesn't verify: %v", err)
	}
}

func TestCompareHash(t *testing.T) {
	correctHash, err := GetHash("correct_password")
	if err != nil {
		t.Fatalf("GetHash() error = %v", err)
	}

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  bool
	}{
		{
			name:     "matching password",
			hash:     correctHash,
			password: "correct_password",
			wantErr:  false,
		},
		{
			name:     "wrong password",
			hash:     correctHash,
			password: "wrong_password",
			wantErr:  true,
		},
		{
			name:     "empty password",
			hash:     correctHash,
			password: "",
			wantErr:  true,
		},
		{
			name:     "garbage hash",
			hash:     "not-a-bcrypt-hash",
			password: "correct_password",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompareHash(tt.hash, tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("CompareHash() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
