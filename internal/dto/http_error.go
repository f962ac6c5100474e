// File: internal/dto/http_error.go
package dto

// HTTPError 全域錯誤響應模型，部分錯誤會附帶額外欄位
// swagger:model dto.HTTPError
type HTTPError struct {
	// error 錯誤描述
	Error string `json:"error" example:"Gadget not found"`
	// code 機器可讀的錯誤代碼
	Code string `json:"code" example:"GADGET_NOT_FOUND"`
}
