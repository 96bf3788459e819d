package main

import (
	"unigate/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.IdentityModel{},
		model.FederatedIdentityModel{},
		model.RefreshSessionModel{},
		model.ProfileModel{},
		model.StudentModel{},
		model.AgentModel{},
		model.TenantModel{},
		model.UniversityModel{},
		model.AuditLogModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
