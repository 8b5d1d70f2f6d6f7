package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testLabelComponent struct {
	Text string
}

type testOffsetComponent struct {
	Y float64
}

// testDisposable 记录 Dispose 调用次数
type testDisposable struct {
	disposed int
}

func (d *testDisposable) Dispose() {
	d.disposed++
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if em.EntityCount() != 2 {
		t.Errorf("Expected 2 entities, got %d", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testLabelComponent{Text: "Pizzas served"})

	label, ok := GetComponent[*testLabelComponent](em, id)
	if !ok {
		t.Fatal("Component should be found")
	}
	if label.Text != "Pizzas served" {
		t.Errorf("Component data mismatch, got %q", label.Text)
	}

	if _, ok := GetComponent[*testOffsetComponent](em, id); ok {
		t.Error("Missing component should not be found")
	}

	// 不存在的实体上添加组件无效果
	em.AddComponent(999, &testLabelComponent{})
	if em.Exists(999) {
		t.Error("AddComponent should not create entities")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	labelType := reflect.TypeOf(&testLabelComponent{})

	if em.HasComponent(id, labelType) {
		t.Error("Should not have component before adding")
	}

	em.AddComponent(id, &testLabelComponent{})
	if !em.HasComponent(id, labelType) {
		t.Error("Should have component after adding")
	}

	em.RemoveComponent(id, labelType)
	if em.HasComponent(id, labelType) {
		t.Error("Should not have component after removal")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	d := &testDisposable{}
	em.AddComponent(id, d)

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在，且未释放
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}
	if d.disposed != 0 {
		t.Error("Dispose should not run before cleanup")
	}

	// 清理后实体消失并释放组件
	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if d.disposed != 1 {
		t.Errorf("Dispose should run once, got %d", d.disposed)
	}
}

func TestDestroyEntityTwice(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	d := &testDisposable{}
	em.AddComponent(id, d)

	em.DestroyEntity(id)
	em.DestroyEntity(id)
	em.RemoveMarkedEntities()
	em.RemoveMarkedEntities()

	if d.disposed != 1 {
		t.Errorf("Dispose should run exactly once, got %d", d.disposed)
	}
}

func TestDestroyAll(t *testing.T) {
	em := NewEntityManager()
	disposables := make([]*testDisposable, 0)
	for i := 0; i < 4; i++ {
		id := em.CreateEntity()
		d := &testDisposable{}
		disposables = append(disposables, d)
		em.AddComponent(id, d)
		em.AddComponent(id, &testLabelComponent{})
	}

	em.DestroyAll()

	if em.EntityCount() != 0 {
		t.Errorf("Expected no entities after DestroyAll, got %d", em.EntityCount())
	}
	for i, d := range disposables {
		if d.disposed != 1 {
			t.Errorf("Entity %d: Dispose should run once, got %d", i, d.disposed)
		}
	}

	// 再次调用无效果
	em.DestroyAll()
	for i, d := range disposables {
		if d.disposed != 1 {
			t.Errorf("Entity %d: Dispose should not run again, got %d", i, d.disposed)
		}
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &testLabelComponent{})
	AddComponent(em, id1, &testOffsetComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testLabelComponent{})

	id3 := em.CreateEntity()
	AddComponent(em, id3, &testOffsetComponent{})

	both := GetEntitiesWith2[*testLabelComponent, *testOffsetComponent](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("Expected only id1 with both components, got %v", both)
	}

	labels := GetEntitiesWith1[*testLabelComponent](em)
	if !reflect.DeepEqual(labels, []EntityID{id1, id2}) {
		t.Errorf("Expected [%d %d] in ascending order, got %v", id1, id2, labels)
	}
}
