package interfaces

import (
	"time"
	"wascrap/internal/domain/entities"
)

type ITokenIssuer interface {
	Issue(account entities.Account) (token string, expiresAt time.Time, err error)
}
