package world

import "github.com/nathoo/thornhold/types"

func buildItems() map[string]*types.Item {
	return map[string]*types.Item{
		// Weapons.
		"short_sword": {
			ID:          "short_sword",
			Name:        "Short Sword",
			Description: "A well-balanced blade, still sharp despite its age. It feels good in your hand.",
			Type:        types.ItemWeapon,
			Modifier:    &types.Modifier{Attack: 4},
			Lore:        "Forged by the smiths of Thornhold in its golden age. The maker's mark, a tiny tower, is etched near the hilt.",
		},
		"rusty_dagger": {
			ID:          "rusty_dagger",
			Name:        "Rusty Dagger",
			Description: "A pitted dagger, once belonging to The Warden. Still wickedly sharp.",
			Type:        types.ItemWeapon,
			Modifier:    &types.Modifier{Attack: 2},
		},

		// Armor.
		"leather_armor": {
			ID:          "leather_armor",
			Name:        "Leather Armor",
			Description: "Cracked but serviceable leather armor. It still offers some protection.",
			Type:        types.ItemArmor,
			Modifier:    &types.Modifier{Defense: 3},
		},
		"iron_shield": {
			ID:          "iron_shield",
			Name:        "Iron Shield",
			Description: "A heavy iron shield, dented but functional. The crest has been scratched away.",
			Type:        types.ItemArmor,
			Modifier:    &types.Modifier{Defense: 4},
		},

		// Consumables.
		"health_potion": {
			ID:          "health_potion",
			Name:        "Health Potion",
			Description: "A small vial of crimson liquid. It glows faintly with healing magic.",
			Type:        types.ItemConsumable,
			Modifier:    &types.Modifier{Health: 30},
			Usable:      true,
			Consumable:  true,
		},
		"stale_bread": {
			ID:          "stale_bread",
			Name:        "Stale Bread",
			Description: "A loaf of bread, hard as stone. But food is food in a place like this.",
			Type:        types.ItemConsumable,
			Modifier:    &types.Modifier{Health: 10},
			Usable:      true,
			Consumable:  true,
		},
		"cellar_cheese": {
			ID:          "cellar_cheese",
			Name:        "Aged Cellar Cheese",
			Description: "A wheel of surprisingly well-preserved cheese. Pungent but appealing.",
			Type:        types.ItemConsumable,
			Modifier:    &types.Modifier{Health: 5},
			Usable:      true,
			Consumable:  true,
		},

		// Keys.
		"library_key": {
			ID:          "library_key",
			Name:        "Library Key",
			Description: "An ornate brass key. The head is shaped like an open book.",
			Type:        types.ItemKey,
			KeyID:       "library",
		},

		// Scrolls.
		"sacred_scroll": {
			ID:          "sacred_scroll",
			Name:        "Sacred Scroll",
			Description: "An ancient scroll covered in sacred text. It radiates a faint warmth. Perhaps it could be used at the Chapel.",
			Type:        types.ItemScroll,
			Usable:      true,
			Consumable:  true,
			Lore:        "Written by the last priest of Thornhold before the fall. The ink shimmers with divine power that has endured centuries.",
		},

		// Quest items.
		"merchant_journal": {
			ID:          "merchant_journal",
			Name:        "Merchant's Journal",
			Description: "A leather-bound journal filled with a merchant's final entries. The last page begs for the journal to be placed on the Chapel altar.",
			Type:        types.ItemQuest,
			Usable:      true,
		},
		"silver_chalice": {
			ID:          "silver_chalice",
			Name:        "Silver Chalice",
			Description: "A tarnished silver chalice. Despite its age, it still holds a certain reverence.",
			Type:        types.ItemQuest,
		},
		"ancient_amulet": {
			ID:          "ancient_amulet",
			Name:        "Ancient Amulet",
			Description: "A heavy amulet of dark metal. Strange symbols pulse with a faint inner light.",
			Type:        types.ItemQuest,
			Modifier:    &types.Modifier{Attack: 2, Defense: 2},
			Lore:        "One of the sealing artifacts used to bind The Forgotten One. Its power has weakened over the centuries but still resonates with protective magic.",
		},
		"mysterious_orb": {
			ID:          "mysterious_orb",
			Name:        "Mysterious Orb",
			Description: "A sphere of pure darkness that seems to absorb all light. It hums with power.",
			Type:        types.ItemQuest,
			Lore:        "The concentrated essence of The Forgotten One's power. Holding it grants visions of a world before Thornhold, when gods walked the earth.",
		},

		// Miscellaneous.
		"rusty_lantern": {
			ID:          "rusty_lantern",
			Name:        "Rusty Lantern",
			Description: "A battered lantern. The oil is long gone, but it might be useful.",
			Type:        types.ItemMisc,
		},
		"torn_tapestry": {
			ID:          "torn_tapestry",
			Name:        "Torn Tapestry",
			Description: "A shredded tapestry depicting the fall of Thornhold. Only fragments of the story remain.",
			Type:        types.ItemMisc,
		},
		"old_spyglass": {
			ID:          "old_spyglass",
			Name:        "Old Spyglass",
			Description: "A brass spyglass. Through it, you can see the world as it once was. Or perhaps as it could be.",
			Type:        types.ItemMisc,
		},
		"quill_pen": {
			ID:          "quill_pen",
			Name:        "Quill Pen",
			Description: "An ancient quill pen. The nib is still stained with ink.",
			Type:        types.ItemMisc,
		},
		"dusty_tome": {
			ID:          "dusty_tome",
			Name:        "Dusty Tome",
			Description: "A thick book bound in cracked leather. The pages speak of the history of Thornhold and the creature imprisoned beneath.",
			Type:        types.ItemMisc,
			Lore:        "Chronicles the founding of Thornhold as a prison for an ancient being. The final chapter, written in a shaking hand, warns that the binding weakens with each passing century.",
		},
		"empty_bottle": {
			ID:          "empty_bottle",
			Name:        "Empty Bottle",
			Description: "A dusty wine bottle. The label has long since faded.",
			Type:        types.ItemMisc,
		},
		"bone_fragment": {
			ID:          "bone_fragment",
			Name:        "Bone Fragment",
			Description: "A fragment of ancient bone. It feels unnaturally cold to the touch.",
			Type:        types.ItemMisc,
		},
		"torch": {
			ID:          "torch",
			Name:        "Torch",
			Description: "A simple wooden torch wrapped in oil-soaked cloth. Ready to be lit.",
			Type:        types.ItemMisc,
		},

		// Crafted items.
		"makeshift_bandage": {
			ID:          "makeshift_bandage",
			Name:        "Makeshift Bandage",
			Description: "A crude bandage fashioned from torn tapestry cloth, bound with a quill pen.",
			Type:        types.ItemConsumable,
			Modifier:    &types.Modifier{Health: 20},
			Usable:      true,
			Consumable:  true,
			Lore:        "Resourcefulness in desperate times. The tapestry of Thornhold's history now serves to heal.",
		},
		"lit_lantern": {
			ID:          "lit_lantern",
			Name:        "Lit Lantern",
			Description: "The rusty lantern now burns with a steady flame, pushing back the darkness.",
			Type:        types.ItemMisc,
			Modifier:    &types.Modifier{Defense: 1},
			Lore:        "Even the oldest tools can serve again when given purpose.",
		},
		"bone_talisman": {
			ID:          "bone_talisman",
			Name:        "Bone Talisman",
			Description: "A fragment of ancient bone set into a silver chalice base. It radiates protective energy.",
			Type:        types.ItemMisc,
			Modifier:    &types.Modifier{Attack: 1, Defense: 3},
			Lore:        "The silver purifies while the bone remembers. Together they ward against the darkness below.",
		},
		"vault_amulet": {
			ID:          "vault_amulet",
			Name:        "Vault Amulet",
			Description: "A perfectly preserved amulet of deep blue crystal. It thrums with a steady, protective pulse.",
			Type:        types.ItemMisc,
			Modifier:    &types.Modifier{Attack: 3, Defense: 5},
			Lore:        "One of the original warding stones of Thornhold. Only those who know the old words can find where it is hidden.",
		},
	}
}
