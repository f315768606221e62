package user

// User 用户值对象（领域记录）
// DDD设计说明：
// 1. User只描述用户的公开属性，没有身份标识（ID只存在于存储侧的Record中）
// 2. 字段不导出，构建后不可变，只能通过Builder创建
// 3. DAO是User与Record之间唯一的转换者
type User struct {
	name     string
	lastName string
	enabled  bool
}

// Name 名
func (u User) Name() string {
	return u.name
}

// LastName 姓
func (u User) LastName() string {
	return u.lastName
}

// IsEnabled 是否启用
func (u User) IsEnabled() bool {
	return u.enabled
}

// FullName 全名：name + " " + lastName
func (u User) FullName() string {
	return u.name + " " + u.lastName
}

// Builder User构建器
//
// 使用示例：
//
//	u := user.NewBuilder().
//	    Name("Barbara").
//	    LastName("Liskov").
//	    Enabled(true).
//	    Build()
type Builder struct {
	name     string
	lastName string
	enabled  bool
}

// NewBuilder 创建User构建器
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

func (b *Builder) LastName(lastName string) *Builder {
	b.lastName = lastName
	return b
}

func (b *Builder) Enabled(enabled bool) *Builder {
	b.enabled = enabled
	return b
}

// Build 生成不可变的User快照，之后再修改Builder不影响已生成的User
func (b *Builder) Build() User {
	return User{
		name:     b.name,
		lastName: b.lastName,
		enabled:  b.enabled,
	}
}
