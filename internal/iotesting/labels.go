package iotesting

import (
	"github.com/gnames/gncamtrap/pkg/geofence"
	"github.com/gnames/gncamtrap/pkg/label"
)

// Labels used across tests.
const (
	Lion = "ddf59264-185a-4d35-b647-2785792bdf54;mammalia;carnivora;" +
		"felidae;panthera;leo;lion"
	PantheraGenus = "fbb23d07-6677-43db-b650-f99ac452c50f;mammalia;" +
		"carnivora;felidae;panthera;;panthera species"
	FelidaeFamily = "df8514b0-10a5-411f-8ed6-0f415e8153a3;mammalia;" +
		"carnivora;felidae;;;cat family"
	CarnivoraOrder = "eeeb5d26-2a47-4d01-a3de-10b33ec0aee4;mammalia;" +
		"carnivora;;;;carnivorous mammal"
	MammaliaClass = "f2d233e3-80e3-433d-9687-e29ecc7a467a;mammalia;;;;;mammal"
	BrownBear     = "330bb1e9-84d6-4e41-afa9-938aee17ea29;mammalia;" +
		"carnivora;ursidae;ursus;arctos;brown bear"
	PolarBear = "e7f83bf6-df2c-4ce0-97fc-2f233df23ec4;mammalia;" +
		"carnivora;ursidae;ursus;maritimus;polar bear"
	GiantPanda = "85662682-67c1-4ecb-ba05-ba12e2df6b65;mammalia;" +
		"carnivora;ursidae;ailuropoda;melanoleuca;giant panda"
	UrsusGenus = "5a0f5e3f-c634-4b86-910a-b105cb526a24;mammalia;" +
		"carnivora;ursidae;ursus;;ursus species"
	UrsidaeFamily = "ec1a70f4-41c0-4aba-9150-292fb2b7a324;mammalia;" +
		"carnivora;ursidae;;;bear family"
	Puma = "9c564562-9429-405c-8529-04cff7752282;mammalia;carnivora;" +
		"felidae;puma;concolor;puma"
	SandCat = "e588253d-d61d-4149-a96c-8c245927a80f;mammalia;carnivora;" +
		"felidae;felis;margarita;sand cat"
	// Unseen is a label with a made-up lineage that is absent from the
	// test taxonomy and blocked in the USA.
	Unseen = "unknown;unknown;abc;def;;;"
)

// TaxonomyLabels returns labels of the test taxonomy. Puma and SandCat are
// not part of it. Genus, family and order of Human are missing too.
func TaxonomyLabels() []string {
	return []string{
		label.Blank,
		label.Human,
		label.Vehicle,
		Lion,
		PantheraGenus,
		FelidaeFamily,
		CarnivoraOrder,
		MammaliaClass,
		label.Animal,
		BrownBear,
		PolarBear,
		GiantPanda,
		UrsusGenus,
		UrsidaeFamily,
	}
}

// GeofenceRules returns base geofence rules used in tests.
func GeofenceRules() geofence.RawRules {
	return geofence.RawRules{
		"mammalia;carnivora;felidae;panthera;leo": {
			"allow": {"KEN": {}, "TZA": {}},
		},
		"mammalia;carnivora;felidae;panthera;": {
			"allow": {"KEN": {}, "TZA": {}, "USA": {"AK", "CA"}},
		},
		"mammalia;carnivora;felidae;;": {
			"allow": {"FRA": {}, "KEN": {}, "TZA": {}, "USA": {}},
			"block": {"FRA": {}, "USA": {"NY"}},
		},
		"mammalia;carnivora;felidae;felis;margarita": {
			"block": {"AUS": {}},
		},
		"mammalia;carnivora;ursidae;;": {
			"block": {"GBR": {}},
		},
		"unknown;abc;def;;": {
			"block": {"USA": {}},
		},
	}
}
