// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/users/loginエンドポイントのリクエストボディを表します。
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenRes is the body returned by a successful login.
type TokenRes struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
