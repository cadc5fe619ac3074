package model

import (
	"testing"

	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestMemberConversion(t *testing.T) {
	member := entity.RestoreMember("memberA", 10000)

	row := FromEntity(member)
	assert.Equal(t, "memberA", row.MemberID)
	assert.Equal(t, int64(10000), row.Money)
	assert.Equal(t, "member", row.TableName())

	back := row.ToEntity()
	assert.Equal(t, member.ID, back.ID)
	assert.Equal(t, member.Money(), back.Money())
}
