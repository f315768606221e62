package user

// Record 存储侧的用户记录
// 设计说明：
// 1. ID由存储分配（0表示尚未持久化），Save成功后回填
// 2. 相等性只由ID决定（Equal），与其他字段无关
// 3. 不带GORM/Redis tag，由各存储适配器自行映射
type Record struct {
	ID       uint64
	Name     string
	LastName string
	Enabled  bool
}

// NewRecord 创建带ID的记录（存储适配器和测试使用）
func NewRecord(id uint64, name, lastName string, enabled bool) *Record {
	return &Record{
		ID:       id,
		Name:     name,
		LastName: lastName,
		Enabled:  enabled,
	}
}

// Equal 按主键判断是否为同一实体
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.ID == other.ID
}

// Key 返回主键，用作map的key
func (r *Record) Key() uint64 {
	return r.ID
}

// IsNew 尚未分配ID
func (r *Record) IsNew() bool {
	return r.ID == 0
}

// RecordBuilder 新记录构建器，不提供设置ID的方法
type RecordBuilder struct {
	name     string
	lastName string
	enabled  bool
}

// NewRecordBuilder 创建记录构建器
func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{}
}

func (b *RecordBuilder) Name(name string) *RecordBuilder {
	b.name = name
	return b
}

func (b *RecordBuilder) LastName(lastName string) *RecordBuilder {
	b.lastName = lastName
	return b
}

func (b *RecordBuilder) Enabled(enabled bool) *RecordBuilder {
	b.enabled = enabled
	return b
}

func (b *RecordBuilder) Build() *Record {
	return &Record{
		Name:     b.name,
		LastName: b.lastName,
		Enabled:  b.enabled,
	}
}
