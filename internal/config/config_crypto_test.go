package config

import (
	"os"
	"testing"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestInitCrypto(t *testing.T) {
	t.Run("InvalidKeySize", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", "curta")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("InitCrypto() deveria ter causado pânico com chave de tamanho inválido, mas não o fez.")
			}
		}()

		InitCrypto()
	})

	t.Run("ValidKey", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", testKey)
		InitCrypto()
	})
}

func TestEncryptDecrypt(t *testing.T) {
	os.Setenv("CRYPTO_KEY", testKey)
	InitCrypto()

	t.Run("RoundTrip", func(t *testing.T) {
		plaintext := "refresh-token-super-secreto"

		encrypted, err := Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt falhou: %v", err)
		}
		if encrypted == plaintext {
			t.Fatal("Encrypt retornou o texto em claro.")
		}

		decrypted, err := Decrypt(encrypted)
		if err != nil {
			t.Fatalf("Decrypt falhou: %v", err)
		}
		if decrypted != plaintext {
			t.Errorf("Texto decifrado incorreto. Esperado: %s, Recebido: %s", plaintext, decrypted)
		}
	})

	t.Run("DistinctCiphertexts", func(t *testing.T) {
		a, err := Encrypt("mesmo texto")
		if err != nil {
			t.Fatalf("Encrypt falhou: %v", err)
		}
		b, err := Encrypt("mesmo texto")
		if err != nil {
			t.Fatalf("Encrypt falhou: %v", err)
		}
		if a == b {
			t.Error("Dois ciphertexts iguais para o mesmo texto: nonce não está sendo sorteado.")
		}
	})

	t.Run("ShortCiphertext", func(t *testing.T) {
		if _, err := Decrypt("YWJj"); err == nil {
			t.Error("Decrypt deveria ter falhado com ciphertext curto, mas passou.")
		}
	})

	t.Run("TamperedCiphertext", func(t *testing.T) {
		encrypted, err := Encrypt("conteudo integro")
		if err != nil {
			t.Fatalf("Encrypt falhou: %v", err)
		}

		raw := []byte(encrypted)
		raw[len(raw)-5] ^= 0x01

		if _, err := Decrypt(string(raw)); err == nil {
			t.Error("Decrypt deveria ter falhado com ciphertext adulterado, mas passou.")
		}
	})
}
