// internal/cryptox/envelope_test.go
package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		plainKey string
		password string
	}{
		{
			name:     "正常系: 通常のAPIキー",
			plainKey: "AIzaSyA-dummy-key-for-testing-0123456789",
			password: "correct horse battery staple",
		},
		{
			name:     "正常系: 空のAPIキーも暗号化できる",
			plainKey: "",
			password: "password123",
		},
		{
			name:     "正常系: マルチバイト文字を含むパスワード",
			plainKey: "sk-some-key",
			password: "ひみつのパスワード",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			enc, err := Encrypt(tc.plainKey, tc.password)
			require.NoError(t, err)
			require.NotNil(t, enc)

			// 各フィールドは有効なBase64であること
			salt, err := base64.StdEncoding.DecodeString(enc.Salt)
			require.NoError(t, err)
			assert.Len(t, salt, 16)
			iv, err := base64.StdEncoding.DecodeString(enc.IV)
			require.NoError(t, err)
			assert.Len(t, iv, 12)
			_, err = base64.StdEncoding.DecodeString(enc.Ciphertext)
			require.NoError(t, err)

			plain, err := Decrypt(enc, tc.password)
			require.NoError(t, err)
			assert.Equal(t, tc.plainKey, plain)
		})
	}
}

func TestEncrypt_ProducesUniqueEnvelopes(t *testing.T) {
	// 同じ入力でもソルトとIVが毎回変わるため、出力は一致しないはず
	enc1, err := Encrypt("same-key", "same-password")
	require.NoError(t, err)
	enc2, err := Encrypt("same-key", "same-password")
	require.NoError(t, err)

	assert.NotEqual(t, enc1.Salt, enc2.Salt)
	assert.NotEqual(t, enc1.IV, enc2.IV)
	assert.NotEqual(t, enc1.Ciphertext, enc2.Ciphertext)
}

func TestDecrypt_WrongPassword(t *testing.T) {
	enc, err := Encrypt("secret-api-key", "right-password")
	require.NoError(t, err)

	plain, err := Decrypt(enc, "wrong-password")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
	assert.Empty(t, plain)
}

func TestDecrypt_TamperedData(t *testing.T) {
	password := "password"
	enc, err := Encrypt("secret-api-key", password)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(e *EncryptedCredential)
	}{
		{
			name: "異常系: 暗号文の改竄",
			mutate: func(e *EncryptedCredential) {
				raw, _ := base64.StdEncoding.DecodeString(e.Ciphertext)
				raw[0] ^= 0xFF
				e.Ciphertext = base64.StdEncoding.EncodeToString(raw)
			},
		},
		{
			name: "異常系: ソルトの差し替え",
			mutate: func(e *EncryptedCredential) {
				e.Salt = base64.StdEncoding.EncodeToString(make([]byte, 16))
			},
		},
		{
			name: "異常系: IVの差し替え",
			mutate: func(e *EncryptedCredential) {
				e.IV = base64.StdEncoding.EncodeToString(make([]byte, 12))
			},
		},
		{
			name: "異常系: Base64として不正な暗号文",
			mutate: func(e *EncryptedCredential) {
				e.Ciphertext = "%%%not-base64%%%"
			},
		},
		{
			name: "異常系: IVの長さが不正",
			mutate: func(e *EncryptedCredential) {
				e.IV = base64.StdEncoding.EncodeToString([]byte("short"))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			broken := *enc
			tc.mutate(&broken)

			plain, decErr := Decrypt(&broken, password)
			// 失敗理由によらず同一のエラーに潰れること
			assert.ErrorIs(t, decErr, ErrDecryptionFailed)
			assert.Empty(t, plain)
		})
	}
}
