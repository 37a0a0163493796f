package entity

import (
	"errors"
	"testing"

	"github.com/esphome-go/api/api"
)

func TestCatalogueInsertAndLookup(t *testing.T) {
	c := New()

	err := c.InsertListEntities(&api.ListEntitiesLightResponse{
		EntityBase: api.EntityBase{ObjectID: "kitchen_light", Key: 10, Name: "Kitchen Light"},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	err = c.InsertListEntities(&api.ListEntitiesLightResponse{
		EntityBase: api.EntityBase{ObjectID: "hallway_light", Key: 20, Name: "Hallway Light", EntityCategory: api.EntityCategoryConfig},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if got, ok := c.LightFromKey(10); !ok || got.ObjectID != "kitchen_light" {
		t.Fatalf("LightFromKey(10) = %+v, %v", got, ok)
	}
	if key, ok := c.LightKeyFromName("hallway_light"); !ok || key != 20 {
		t.Fatalf("LightKeyFromName = %d, %v", key, ok)
	}
	if _, ok := c.LightFromKey(99); ok {
		t.Fatal("expected no entry for key 99")
	}

	all := c.KeysForKind(KindLight)
	if len(all) != 2 || all[0] != 10 || all[1] != 20 {
		t.Fatalf("KeysForKind = %v", all)
	}

	primary := c.PrimaryKeysForKind(KindLight)
	if len(primary) != 1 || primary[0] != 10 {
		t.Fatalf("PrimaryKeysForKind = %v, want [10]", primary)
	}
}

func TestCatalogueDuplicateKeyIsFatal(t *testing.T) {
	c := New()
	if err := c.InsertListEntities(&api.ListEntitiesSwitchResponse{
		EntityBase: api.EntityBase{ObjectID: "a", Key: 1},
	}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	err := c.InsertListEntities(&api.ListEntitiesSwitchResponse{
		EntityBase: api.EntityBase{ObjectID: "b", Key: 1},
	})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("got %v, want ErrDuplicateKey", err)
	}
}

func TestCatalogueDuplicateObjectIDIsFatal(t *testing.T) {
	c := New()
	if err := c.InsertListEntities(&api.ListEntitiesSwitchResponse{
		EntityBase: api.EntityBase{ObjectID: "a", Key: 1},
	}); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	err := c.InsertListEntities(&api.ListEntitiesSwitchResponse{
		EntityBase: api.EntityBase{ObjectID: "a", Key: 2},
	})
	if !errors.Is(err, ErrDuplicateObjectID) {
		t.Fatalf("got %v, want ErrDuplicateObjectID", err)
	}
}

func TestCatalogueUnknownListEntitiesType(t *testing.T) {
	c := New()
	err := c.InsertListEntities(&api.HelloRequest{})
	if !errors.Is(err, ErrUnknownListEntitiesType) {
		t.Fatalf("got %v, want ErrUnknownListEntitiesType", err)
	}
}

func TestCatalogueServices(t *testing.T) {
	c := New()
	svc := api.ListEntitiesServicesResponse{Name: "restart", Key: 5}
	if err := c.InsertListEntities(&svc); err != nil {
		t.Fatalf("insert service: %v", err)
	}
	got, ok := c.Services.FromKey(5)
	if !ok || got.Name != "restart" {
		t.Fatalf("Services.FromKey(5) = %+v, %v", got, ok)
	}
	if len(c.Services.All()) != 1 {
		t.Fatalf("Services.All() len = %d, want 1", len(c.Services.All()))
	}
}

func TestKindMetadata(t *testing.T) {
	if !KindLight.Commandable() {
		t.Fatal("Light should be commandable")
	}
	if KindSensor.Commandable() {
		t.Fatal("Sensor should not be commandable")
	}
	if KindButton.StateType() != 0 {
		t.Fatalf("Button.StateType() = %v, want 0 (no push state)", KindButton.StateType())
	}
	if KindCamera.CommandType() != 0 {
		t.Fatalf("Camera.CommandType() = %v, want 0 (not commandable)", KindCamera.CommandType())
	}
	if len(Kinds()) != int(numKinds) {
		t.Fatalf("Kinds() len = %d, want %d", len(Kinds()), numKinds)
	}
}
