// internal/client/session.go
package client

import (
	"errors"
	"sync"

	"go_5_vocab_ai/internal/cryptox"
)

// ErrSessionLocked はキー未復号のままAPIキーを要求したときのエラーです
var ErrSessionLocked = errors.New("client: key session is locked")

// KeySession は復号済みAPIキーのメモリ上の置き場所です。キーはディスクにも
// 設定にも書き出さず、Unlockで生まれClearで消えるライフサイクルを持ちます
type KeySession struct {
	mu  sync.RWMutex
	key string
}

func NewKeySession() *KeySession {
	return &KeySession{}
}

// Unlock は保存済みの暗号封筒をパスワードで復号してセッションに載せます。
// 失敗理由は区別せず cryptox.ErrDecryptionFailed のまま返す
func (s *KeySession) Unlock(env *cryptox.EncryptedCredential, password string) error {
	plain, err := cryptox.Decrypt(env, password)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.key = plain
	s.mu.Unlock()
	return nil
}

// UnlockWithKey は平文キーの直接入力です。保存前の動作確認に使う
func (s *KeySession) UnlockWithKey(plainKey string) {
	s.mu.Lock()
	s.key = plainKey
	s.mu.Unlock()
}

func (s *KeySession) Key() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.key == "" {
		return "", ErrSessionLocked
	}
	return s.key, nil
}

func (s *KeySession) Unlocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key != ""
}

// Clear はキーを破棄します。ログアウトやロック操作で呼ぶ
func (s *KeySession) Clear() {
	s.mu.Lock()
	s.key = ""
	s.mu.Unlock()
}
