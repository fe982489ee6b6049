package minhash

// NumPermutations is the number of independent hash permutations the
// MinHash register carries, and therefore the length of the Hash output.
const NumPermutations = 128

// PermA and PermB are the fixed, normative MinHash permutation constants.
// Every compliant implementation must use bit-identical tables or
// computed digests diverge across implementations. They are reduced
// modulo the Mersenne prime 2^61-1 at generation time (PermA is never
// zero, since a zero multiplier would collapse that permutation slot).
//
// These are initialization-time constants; callers must never mutate
// the backing arrays.
var (
	PermA = [NumPermutations]uint64{
		0x01169556af3a4b37, 0x1ea7e786794faf73, 0x026bed2605c9fbdb, 0x0b1a26845bdef00f,
		0x09e05e798408384b, 0x1205d985e67f35e6, 0x19fa0c43b22efb59, 0x1d957f99e50ea5ba,
		0x13420227894f602d, 0x037271bc22e5c352, 0x15e54fa4c3fcc6b3, 0x190aa41f2641f254,
		0x08acf6ade81eefd6, 0x0d4ad9d1d3022481, 0x0c60c5a89b1770f2, 0x03d61b624039c0d7,
		0x0488f5283ee139dd, 0x0edfffa5b93778ab, 0x13c2ce4e0f85f847, 0x16cd47a685bc9609,
		0x186a573a9a1ef21e, 0x1dde7f8ae781451d, 0x0e3039b73523d9b5, 0x1d38291d0d4dfd20,
		0x0fda2c0a74e8e4f7, 0x100b3a0590fae63f, 0x04134c6a4959ba42, 0x0e9055d3a4b7e12c,
		0x1c9ad55a6092ca4a, 0x130f5e34b2ba178a, 0x06c1b914d029d321, 0x00931db8e633fcff,
		0x1fdc36efa5751f6d, 0x1a0dce5f569babf3, 0x08fd290c93ce38c6, 0x00ce151c79d03623,
		0x11ce6cd3cab12a58, 0x06759292ce21b494, 0x15d8a08193017f32, 0x1ccba179bff417c5,
		0x09f8d9f1a3127f11, 0x072e78b4b7e79363, 0x10d5d90666dab211, 0x0492e1e3fa6fb4c6,
		0x1544006d23b2047b, 0x07672e242cf0529d, 0x1985a9b636e315b6, 0x07442761242dfff5,
		0x0ab0eb9d186af06e, 0x0e9f2994e22fe9a2, 0x153dd3490e76e285, 0x18d216e1c085b5ec,
		0x01a32e6a09551151, 0x0cdc127e0137e76e, 0x063327368692a33e, 0x0d52d5104c834626,
		0x0b8896c5f4dd22f5, 0x126fb8d71cf250e4, 0x1824132beb355b2a, 0x010a83e775e5fbb4,
		0x1f9f96a64f87198e, 0x17bfa35757f0866a, 0x0c693c5e4ca76486, 0x1c0e7dddc4f46c23,
		0x10c3a3ccd86e9540, 0x0d04dadede58e5e4, 0x159f6a843ffce109, 0x06787f7e97cc48b5,
		0x1cb8958e8c0e5436, 0x0213bb597080152c, 0x0debee50e0457d22, 0x087d5d5fcfba37c7,
		0x040f40979b4173aa, 0x02c093306b6d8fbb, 0x078d8d2222c7055b, 0x15fb748f573f30c3,
		0x114f3bbb1133fb1f, 0x0f77e340328a67dd, 0x162d3e864755065f, 0x0a6acfab6942d6ee,
		0x0a3ea2868db7031a, 0x1edb95a5717cdd6c, 0x06231ebd8e1bf554, 0x019c39e1d7887be0,
		0x14d18b07de6be4f4, 0x015d4f81a9d62aca, 0x05352108ceecac77, 0x01d26f58846fd565,
		0x1a78d12c841f8e7e, 0x18c095e45cb996c0, 0x125741c9889c4247, 0x0e74cbd18bf90d45,
		0x1e4ff66d08b6b2f4, 0x0eae9f48b78644ff, 0x10fd14dfee1ae20f, 0x0b9fab5bd0e28f57,
		0x133867d558483adb, 0x0e599d69a2dc6237, 0x09370a058110d51e, 0x0f853a50a97623f4,
		0x1a290760230eeb23, 0x07147c508d5aac6e, 0x0549783440eff408, 0x156f731149dc7049,
		0x127f84e2ce69139c, 0x00b2e6ca5e10805d, 0x09cd7307be8666b9, 0x09b4e71c72fbbea7,
		0x0769a6b29ddfe9f8, 0x0bef1e350d3ee160, 0x0ef5e3a2bdb7821f, 0x0f68c41fb9e8b587,
		0x1d508ce918288623, 0x1fe5c126d8ef05c9, 0x1c0f038d952f5ec8, 0x1f7608323ef7fe46,
		0x02ecf2e2af62295e, 0x1e8fd03a72fdf890, 0x105b6e955c6df1e5, 0x076d85fd5af20ca1,
		0x008fbb30f68d221d, 0x021ee68d05871af4, 0x199eee30025209b7, 0x18a379012d7887c0,
		0x1b760bc649fe18c1, 0x15e9f38fabf5e971, 0x160d8b9f0e12788d, 0x0218d0bb7f6d1a50,
	}

	PermB = [NumPermutations]uint64{
		0x0e0fc48ec14678ca, 0x10e7653914775617, 0x18597bb019f22f45, 0x17582a85cfd1e729,
		0x140aeada383adc47, 0x1465182f437bfcb4, 0x149729596e6a03bd, 0x01430b755522c95b,
		0x0bd51a2ef14791df, 0x025e65654149b8ae, 0x1782b221ccf8d785, 0x18afbf9cbfbba28c,
		0x16075782ee0772bb, 0x061c4a428c63fb56, 0x0ffde122a159b514, 0x0053e3b957483957,
		0x16ad81237011d493, 0x1fd3f8788d07143d, 0x06e1e3cdab994ea4, 0x0e1d7c45e38bc775,
		0x12d902005b7b8267, 0x0577fbd60a84e441, 0x088545fa91d5d05d, 0x0988e2d9f5934e37,
		0x18dc4dfd30327561, 0x160e79cae1059545, 0x0771e107e5ba58ae, 0x05dc5c7f1e799a53,
		0x0275cb7cfa0e3321, 0x1e66948468387ca4, 0x175399988a4a8147, 0x0c87b5dfeb37508f,
		0x154a1a56045f56e7, 0x1176f02ed98bcfca, 0x0c20bb54dd224fd3, 0x197fe3abe1b17791,
		0x0a62df979d74fb6b, 0x0ad26549e5a4324d, 0x11a079647b240138, 0x131d4d9ab977d4a0,
		0x109df83769b7b549, 0x0f437975a174628a, 0x13f6fe2593cf60cf, 0x06c26a7293f1337f,
		0x00faa9bcdca3c920, 0x044d933c045ff825, 0x1dbf80d9d242044b, 0x09d760e93c6e7f6b,
		0x1006b467692086c2, 0x1239eea743063f27, 0x08351a7c25b5e1ae, 0x07cb12c99096505d,
		0x047ac74e6855c590, 0x13d2c107c532621a, 0x02eaee86dcd81a8a, 0x1df821c16883a1f0,
		0x07c2ba0fd5c0cb88, 0x0e37b6d6955f2f53, 0x122ad6747ba2723f, 0x1bcc9e6f50085575,
		0x17bd374bf57f13c9, 0x0b3e7631eb52c8d9, 0x02c92c0c96fb2d3b, 0x17de58809b968cb6,
		0x117d9cbe9fad036c, 0x13812dcbda121a31, 0x0a9cb2d89c441cf5, 0x1d05201e613fb21d,
		0x0271d1f5165c64f8, 0x1624c33331555c6a, 0x04a679a93147c7aa, 0x15f143844e29a01f,
		0x16f3404d6f0843ab, 0x13389592b4a6a9c5, 0x07ada88d4c8fb800, 0x0fc58f60b079b82a,
		0x146339b15fada929, 0x029f82a93ce0fb18, 0x11d499108d2b7178, 0x08086e4063b6e6a0,
		0x020a71fc4b34d6d9, 0x1f33a09a50072ecd, 0x1d7211024c23e384, 0x1a7e8cc04abb6ee8,
		0x12e8d6a6d7d9b111, 0x09125456d34a9612, 0x157f5556526d2936, 0x11e0ef092704ad41,
		0x1eace5ed90ab3f23, 0x11a0b4c1f86e4c0b, 0x16040333b8d4cfaa, 0x0584dc85c3fc0b72,
		0x1c79098afd5ee59f, 0x12ccf4b9e563484b, 0x14731b292f77cc57, 0x077483e8b085ec1c,
		0x05c9d86f4b4919d2, 0x190174a28f12e6a8, 0x170a806a0a80fc03, 0x1f854e14abb6b56b,
		0x10c7e4a4db50fe08, 0x0fe13d96d7d7d217, 0x1c615375b7fc3542, 0x0b711d20b9789061,
		0x16f9259d33bc2229, 0x1b0a0d1d66fe25b7, 0x12a79fe65ac7d190, 0x157e2e68ef8b96f8,
		0x1278a7c917f68cbe, 0x07781b4ba40de255, 0x15ed1fcdf07373ba, 0x12c27756a0d04059,
		0x060d66ba36ed12f0, 0x0cc2c8086394be84, 0x09c2b87a4a2e5d56, 0x017bce25ebeccda9,
		0x1c725ad90139f5da, 0x00a15b2358af257b, 0x164b10b8c3256627, 0x1492ef1cb5c28357,
		0x0003f82890f393c2, 0x04131beeaa890970, 0x1265b566dade192c, 0x01f221a17a5a6704,
		0x0641648826e52df9, 0x17cd5d276f01704b, 0x09747af2a19513da, 0x1465e1075868bd02,
	}
)

// mersennePrime61 is 2^61-1, the Mersenne prime used as the modulus of
// the universal hash family underlying MinHash.
const mersennePrime61 = (uint64(1) << 61) - 1

// max32 is the maximum value of a 32-bit unsigned integer.
const max32 = (uint64(1) << 32) - 1
