package asset

import "context"

// Store Logo等二进制资源的外部存储。
// 本服务只拿它换取一个可落库的URL，存储失败不影响模板记录本身。
//
//go:generate mockgen -source=./asset.go -destination=./mocks/asset.mock.go -package=assetmocks -typed Store
type Store interface {
	// Upload 上传对象并返回可公开访问的URL
	Upload(ctx context.Context, path, contentType string, data []byte) (string, error)

	// Delete 删除对象，对象不存在视为成功
	Delete(ctx context.Context, path string) error
}
