// Package cryptox はユーザーのパスワードから導出した鍵でAPIキーを
// 暗号化・復号するエンベロープ暗号のコーデックです。
// ネットワークやディスクへのI/Oは一切行わない純粋な変換のみを提供します。
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// 暗号化の仕様
const (
	saltLength    = 16      // 128 bit
	ivLength      = 12      // 96 bit (AES-GCM標準ノンス長)
	keyLength     = 32      // 256 bit
	kdfIterations = 100_000 // オフライン総当たり対策として意図的に重くする
)

// ErrDecryptionFailed は復号失敗を表します。
// 「パスワード誤り」と「データ破損」を区別できる情報は意図的に含めません
// （オラクルとして悪用されないため、失敗理由は常にこの1種類に潰す）。
var ErrDecryptionFailed = errors.New("decryption failed: incorrect password or corrupted data")

// EncryptedCredential は保存用の暗号化済みAPIキーのエンベロープです。
// 各フィールドはBase64でエンコードされた不透明なバイト列
type EncryptedCredential struct {
	Ciphertext string `json:"ciphertext"`
	IV         string `json:"iv"`
	Salt       string `json:"salt"`
}

// deriveKey はパスワードとソルトから PBKDF2-SHA256 で256bit鍵を導出します
func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, kdfIterations, keyLength, sha256.New)
}

// Encrypt は plainKey をパスワード由来の鍵で AES-256-GCM 暗号化します。
// ソルトとIVは呼び出しごとに必ず新規生成するため、同じ入力でも毎回異なる
// 出力になります（確率的暗号化）。
func Encrypt(plainKey, password string) (*EncryptedCredential, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("cryptox.Encrypt: generating salt: %w", err)
	}
	iv := make([]byte, ivLength)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("cryptox.Encrypt: generating iv: %w", err)
	}

	key := deriveKey(password, salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cryptox.Encrypt: %w", err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cryptox.Encrypt: %w", err)
	}

	// 認証タグはSealが暗号文末尾に付加する
	ciphertext := aesgcm.Seal(nil, iv, []byte(plainKey), nil)

	return &EncryptedCredential{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		IV:         base64.StdEncoding.EncodeToString(iv),
		Salt:       base64.StdEncoding.EncodeToString(salt),
	}, nil
}

// Decrypt は保存されたソルトと与えられたパスワードから鍵を再導出し、
// 認証付き復号を試みます。認証タグの検証に失敗した場合（パスワード誤り、
// またはデータ破損）は常に ErrDecryptionFailed を返します。
func Decrypt(enc *EncryptedCredential, password string) (string, error) {
	salt, err := base64.StdEncoding.DecodeString(enc.Salt)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	iv, err := base64.StdEncoding.DecodeString(enc.IV)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	ciphertext, err := base64.StdEncoding.DecodeString(enc.Ciphertext)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	if len(iv) != ivLength {
		return "", ErrDecryptionFailed
	}

	key := deriveKey(password, salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	plaintext, err := aesgcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	return string(plaintext), nil
}
