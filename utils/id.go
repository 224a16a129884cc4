package utils

import (
	"crypto/rand"
	"fmt"
)

// EntityType names an entity class for id generation
type EntityType string

const (
	EntityCompany           EntityType = "company"
	EntityProject           EntityType = "project"
	EntityTool              EntityType = "tool"
	EntityImpl              EntityType = "impl"
	EntityProgress          EntityType = "progress"
	EntityBlueprint         EntityType = "blueprint"
	EntityBlueprintStep     EntityType = "blueprintStep"
	EntityBlueprintTool     EntityType = "blueprintTool"
	EntityProjectTool       EntityType = "projectTool"
	EntityIndustry          EntityType = "industry"
	EntityNiche             EntityType = "niche"
	EntityProduct           EntityType = "product"
	EntityService           EntityType = "service"
	EntityCompanyIndustry   EntityType = "companyIndustry"
	EntityCompanyNiche      EntityType = "companyNiche"
	EntityCompanyProduct    EntityType = "companyProduct"
	EntityCompanyService    EntityType = "companyService"
	EntityBlueprintIndustry EntityType = "blueprintIndustry"
	EntityBlueprintNiche    EntityType = "blueprintNiche"
)

var idPrefixes = map[EntityType]string{
	EntityCompany:           "co",
	EntityProject:           "pj",
	EntityTool:              "tl",
	EntityImpl:              "im",
	EntityProgress:          "pg",
	EntityBlueprint:         "bp",
	EntityBlueprintStep:     "bs",
	EntityBlueprintTool:     "bt",
	EntityProjectTool:       "pt",
	EntityIndustry:          "in",
	EntityNiche:             "ni",
	EntityProduct:           "pd",
	EntityService:           "sv",
	EntityCompanyIndustry:   "ci",
	EntityCompanyNiche:      "cn",
	EntityCompanyProduct:    "cp",
	EntityCompanyService:    "cs",
	EntityBlueprintIndustry: "bi",
	EntityBlueprintNiche:    "bn",
}

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const idTokenLength = 12

// GenerateID returns a type-prefixed external identifier such as
// "co_4xKpQ92mVbTz". The random token carries enough entropy that
// collisions are not guarded against.
func GenerateID(entity EntityType) string {
	prefix, ok := idPrefixes[entity]
	if !ok {
		panic(fmt.Sprintf("unknown entity type %q", entity))
	}

	buf := make([]byte, idTokenLength)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("failed to read random bytes: %v", err))
	}
	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}

	return prefix + "_" + string(buf)
}
