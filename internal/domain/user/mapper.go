package user

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=$GOFILE -destination=mocks/mock_mapper.go -package=mocks

// Mapper 存储记录 → 领域记录（单向）
// 反方向的转换由DAO在Persist中直接完成
type Mapper interface {
	ToTarget(record *Record) User
}

type mapper struct{}

// NewMapper 创建默认映射器
func NewMapper() Mapper {
	return mapper{}
}

// ToTarget 投影name、lastName、enabled，丢弃ID
func (mapper) ToTarget(record *Record) User {
	return NewBuilder().
		Name(record.Name).
		LastName(record.LastName).
		Enabled(record.Enabled).
		Build()
}
